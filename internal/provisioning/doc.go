// Package provisioning provides shared types, interfaces, and orchestration
// for the VM demo workflow.
//
// # Subpackages
//
//   - infrastructure/ — resource group, virtual network, network interfaces
//   - compute/ — managed disks, virtual machines, tag and disk updates
//   - teardown/ — best-effort resource group deletion
//
// # Core Types
//
// Context carries configuration, state, the cloud client, and the observer.
// Phase defines a workflow step with Name() and Provision() methods.
// State accumulates results from each phase (handles to the resource group,
// network, interfaces, disks, and machines).
package provisioning
