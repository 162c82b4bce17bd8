package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// SubnetSpec describes one subnet inside a virtual network.
type SubnetSpec struct {
	Name          string
	AddressPrefix string
}

// OSFamily selects the OS configuration of a virtual machine.
type OSFamily string

const (
	OSWindows OSFamily = "windows"
	OSLinux   OSFamily = "linux"
)

// ImageReference identifies a platform image.
type ImageReference struct {
	Publisher string
	Offer     string
	SKU       string
	Version   string
}

// DataDiskAttachment pairs an existing managed disk with the logical unit
// number it should occupy on a machine.
type DataDiskAttachment struct {
	Disk *armcompute.Disk
	LUN  int32
}

// VirtualMachineSpec holds all parameters for creating a virtual machine.
type VirtualMachineSpec struct {
	Name          string
	Size          string
	OS            OSFamily
	Image         ImageReference
	AdminUsername string
	AdminPassword string
	InterfaceID   string
	DataDisks     []DataDiskAttachment
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	// EnsureResourceGroup creates the resource group if it does not exist.
	EnsureResourceGroup(ctx context.Context, name, location string) (*armresources.ResourceGroup, error)
	// DeleteResourceGroup deletes the resource group and everything in it,
	// blocking until the deletion completes. A missing group is not an error.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// NetworkManager defines the interface for managing virtual networks and
// network interfaces.
type NetworkManager interface {
	EnsureVirtualNetwork(ctx context.Context, resourceGroup, name, location, addressSpace string, subnets []SubnetSpec) (*armnetwork.VirtualNetwork, error)
	EnsureInterface(ctx context.Context, resourceGroup, name, location, subnetID string) (*armnetwork.Interface, error)
}

// DiskManager defines the interface for managing managed disks.
type DiskManager interface {
	// EnsureDisk creates an empty managed disk of the given size.
	EnsureDisk(ctx context.Context, resourceGroup, name, location string, sizeGB int32) (*armcompute.Disk, error)
}

// VirtualMachineManager defines the interface for managing virtual machines.
type VirtualMachineManager interface {
	CreateVirtualMachine(ctx context.Context, resourceGroup, location string, spec VirtualMachineSpec) (*armcompute.VirtualMachine, error)

	// UpdateVirtualMachineTags merges the given tags into the machine's
	// existing tags. Keys not named in the update are preserved; named
	// keys are overwritten.
	UpdateVirtualMachineTags(ctx context.Context, resourceGroup, name string, tags map[string]string) (*armcompute.VirtualMachine, error)

	// AttachDataDisk appends the disk to the machine's data-disk list at
	// the given LUN. Previously attached disks keep their LUNs and sizes.
	AttachDataDisk(ctx context.Context, resourceGroup, vmName string, disk *armcompute.Disk, lun int32) (*armcompute.VirtualMachine, error)

	ListVirtualMachines(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error)
	DeleteVirtualMachine(ctx context.Context, resourceGroup, name string) error
}

// CloudManager combines all resource-kind interfaces.
type CloudManager interface {
	ResourceGroupManager
	NetworkManager
	DiskManager
	VirtualMachineManager
}
