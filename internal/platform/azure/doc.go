// Package azure provides a thin wrapper around the Azure Resource Manager
// API for the resource kinds this tool manages: resource groups, virtual
// networks, network interfaces, managed disks, and virtual machines.
//
// Every long-running operation is exposed as a synchronous blocking call:
// the wrapper starts the operation and polls until it reaches a terminal
// state before returning. Workflow code above this package therefore has
// no concurrency concerns.
package azure
