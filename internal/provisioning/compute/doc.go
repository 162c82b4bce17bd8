// Package compute provisions the demo's managed disks and virtual
// machines, applies the tag and data-disk updates, enumerates the
// machines in the resource group, and deletes the Windows machine.
package compute
