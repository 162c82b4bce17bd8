package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// MockClient is a mock implementation of CloudManager. Methods with a nil
// Func return benign defaults so tests only set up what they assert on.
type MockClient struct {
	EnsureResourceGroupFunc func(ctx context.Context, name, location string) (*armresources.ResourceGroup, error)
	DeleteResourceGroupFunc func(ctx context.Context, name string) error

	EnsureVirtualNetworkFunc func(ctx context.Context, resourceGroup, name, location, addressSpace string, subnets []SubnetSpec) (*armnetwork.VirtualNetwork, error)
	EnsureInterfaceFunc      func(ctx context.Context, resourceGroup, name, location, subnetID string) (*armnetwork.Interface, error)

	EnsureDiskFunc func(ctx context.Context, resourceGroup, name, location string, sizeGB int32) (*armcompute.Disk, error)

	CreateVirtualMachineFunc     func(ctx context.Context, resourceGroup, location string, spec VirtualMachineSpec) (*armcompute.VirtualMachine, error)
	UpdateVirtualMachineTagsFunc func(ctx context.Context, resourceGroup, name string, tags map[string]string) (*armcompute.VirtualMachine, error)
	AttachDataDiskFunc           func(ctx context.Context, resourceGroup, vmName string, disk *armcompute.Disk, lun int32) (*armcompute.VirtualMachine, error)
	ListVirtualMachinesFunc      func(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error)
	DeleteVirtualMachineFunc     func(ctx context.Context, resourceGroup, name string) error
}

// Ensure interface compliance
var _ CloudManager = (*MockClient)(nil)

func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, location string) (*armresources.ResourceGroup, error) {
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, location)
	}
	return &armresources.ResourceGroup{Name: &name, Location: &location}, nil
}

func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) EnsureVirtualNetwork(ctx context.Context, resourceGroup, name, location, addressSpace string, subnets []SubnetSpec) (*armnetwork.VirtualNetwork, error) {
	if m.EnsureVirtualNetworkFunc != nil {
		return m.EnsureVirtualNetworkFunc(ctx, resourceGroup, name, location, addressSpace, subnets)
	}
	return &armnetwork.VirtualNetwork{Name: &name}, nil
}

func (m *MockClient) EnsureInterface(ctx context.Context, resourceGroup, name, location, subnetID string) (*armnetwork.Interface, error) {
	if m.EnsureInterfaceFunc != nil {
		return m.EnsureInterfaceFunc(ctx, resourceGroup, name, location, subnetID)
	}
	id := "/mock/networkInterfaces/" + name
	return &armnetwork.Interface{ID: &id, Name: &name}, nil
}

func (m *MockClient) EnsureDisk(ctx context.Context, resourceGroup, name, location string, sizeGB int32) (*armcompute.Disk, error) {
	if m.EnsureDiskFunc != nil {
		return m.EnsureDiskFunc(ctx, resourceGroup, name, location, sizeGB)
	}
	id := "/mock/disks/" + name
	return &armcompute.Disk{
		ID:   &id,
		Name: &name,
		Properties: &armcompute.DiskProperties{
			DiskSizeGB: &sizeGB,
		},
	}, nil
}

func (m *MockClient) CreateVirtualMachine(ctx context.Context, resourceGroup, location string, spec VirtualMachineSpec) (*armcompute.VirtualMachine, error) {
	if m.CreateVirtualMachineFunc != nil {
		return m.CreateVirtualMachineFunc(ctx, resourceGroup, location, spec)
	}
	return &armcompute.VirtualMachine{Name: &spec.Name}, nil
}

func (m *MockClient) UpdateVirtualMachineTags(ctx context.Context, resourceGroup, name string, tags map[string]string) (*armcompute.VirtualMachine, error) {
	if m.UpdateVirtualMachineTagsFunc != nil {
		return m.UpdateVirtualMachineTagsFunc(ctx, resourceGroup, name, tags)
	}
	return &armcompute.VirtualMachine{Name: &name}, nil
}

func (m *MockClient) AttachDataDisk(ctx context.Context, resourceGroup, vmName string, disk *armcompute.Disk, lun int32) (*armcompute.VirtualMachine, error) {
	if m.AttachDataDiskFunc != nil {
		return m.AttachDataDiskFunc(ctx, resourceGroup, vmName, disk, lun)
	}
	return &armcompute.VirtualMachine{Name: &vmName}, nil
}

func (m *MockClient) ListVirtualMachines(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error) {
	if m.ListVirtualMachinesFunc != nil {
		return m.ListVirtualMachinesFunc(ctx, resourceGroup)
	}
	return nil, nil
}

func (m *MockClient) DeleteVirtualMachine(ctx context.Context, resourceGroup, name string) error {
	if m.DeleteVirtualMachineFunc != nil {
		return m.DeleteVirtualMachineFunc(ctx, resourceGroup, name)
	}
	return nil
}
