package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
)

// CreateVirtualMachine creates a virtual machine from the given spec and
// blocks until provisioning completes.
func (c *RealClient) CreateVirtualMachine(ctx context.Context, resourceGroup, location string, spec VirtualMachineSpec) (*armcompute.VirtualMachine, error) {
	osProfile := &armcompute.OSProfile{
		ComputerName:  to.Ptr(spec.Name),
		AdminUsername: to.Ptr(spec.AdminUsername),
		AdminPassword: to.Ptr(spec.AdminPassword),
	}
	switch spec.OS {
	case OSWindows:
		osProfile.WindowsConfiguration = &armcompute.WindowsConfiguration{
			EnableAutomaticUpdates: to.Ptr(true),
		}
	case OSLinux:
		osProfile.LinuxConfiguration = &armcompute.LinuxConfiguration{
			DisablePasswordAuthentication: to.Ptr(false),
		}
	default:
		return nil, fmt.Errorf("unknown OS family: %q", spec.OS)
	}

	poller, err := c.vms.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, armcompute.VirtualMachine{
		Location: to.Ptr(location),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(spec.Size)),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: &armcompute.ImageReference{
					Publisher: to.Ptr(spec.Image.Publisher),
					Offer:     to.Ptr(spec.Image.Offer),
					SKU:       to.Ptr(spec.Image.SKU),
					Version:   to.Ptr(spec.Image.Version),
				},
				OSDisk: &armcompute.OSDisk{
					Name:         to.Ptr(spec.Name + "-osdisk"),
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(armcompute.StorageAccountTypesStandardLRS),
					},
				},
				DataDisks: buildDataDisks(spec.DataDisks),
			},
			OSProfile: osProfile,
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{
						ID: to.Ptr(spec.InterfaceID),
						Properties: &armcompute.NetworkInterfaceReferenceProperties{
							Primary: to.Ptr(true),
						},
					},
				},
			},
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual machine: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for virtual machine creation: %w", err)
	}

	return &resp.VirtualMachine, nil
}

func buildDataDisks(attachments []DataDiskAttachment) []*armcompute.DataDisk {
	if len(attachments) == 0 {
		return nil
	}
	disks := make([]*armcompute.DataDisk, 0, len(attachments))
	for _, a := range attachments {
		dd := &armcompute.DataDisk{
			Lun:          to.Ptr(a.LUN),
			Name:         a.Disk.Name,
			CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesAttach),
			Caching:      to.Ptr(armcompute.CachingTypesReadWrite),
			ManagedDisk: &armcompute.ManagedDiskParameters{
				ID: a.Disk.ID,
			},
		}
		if a.Disk.Properties != nil {
			dd.DiskSizeGB = a.Disk.Properties.DiskSizeGB
		}
		disks = append(disks, dd)
	}
	return disks
}

// UpdateVirtualMachineTags merges tags into the machine's existing tags.
// ARM PATCH replaces the whole tag collection, so the merge happens here:
// read the current set, overlay the update, write the union back.
func (c *RealClient) UpdateVirtualMachineTags(ctx context.Context, resourceGroup, name string, tags map[string]string) (*armcompute.VirtualMachine, error) {
	current, err := c.vms.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get virtual machine: %w", err)
	}

	poller, err := c.vms.BeginUpdate(ctx, resourceGroup, name, armcompute.VirtualMachineUpdate{
		Tags: mergeTags(current.Tags, tags),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update virtual machine tags: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for tag update: %w", err)
	}

	return &resp.VirtualMachine, nil
}

// AttachDataDisk appends an existing managed disk to the machine's
// data-disk list at the given LUN, preserving all prior attachments.
func (c *RealClient) AttachDataDisk(ctx context.Context, resourceGroup, vmName string, disk *armcompute.Disk, lun int32) (*armcompute.VirtualMachine, error) {
	current, err := c.vms.Get(ctx, resourceGroup, vmName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get virtual machine: %w", err)
	}
	if current.Properties == nil || current.Properties.StorageProfile == nil {
		return nil, fmt.Errorf("virtual machine %s has no storage profile", vmName)
	}

	updated, err := appendDataDisk(current.Properties.StorageProfile.DataDisks, disk, lun)
	if err != nil {
		return nil, fmt.Errorf("failed to attach data disk to %s: %w", vmName, err)
	}

	poller, err := c.vms.BeginUpdate(ctx, resourceGroup, vmName, armcompute.VirtualMachineUpdate{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				DataDisks: updated,
			},
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to attach data disk: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for data disk attachment: %w", err)
	}

	return &resp.VirtualMachine, nil
}

// ListVirtualMachines returns all virtual machines in the resource group.
func (c *RealClient) ListVirtualMachines(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error) {
	var machines []*armcompute.VirtualMachine

	pager := c.vms.NewListPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual machines: %w", err)
		}
		machines = append(machines, page.Value...)
	}

	return machines, nil
}

// DeleteVirtualMachine deletes the virtual machine and blocks until the
// deletion completes. A machine that is already gone is not an error.
func (c *RealClient) DeleteVirtualMachine(ctx context.Context, resourceGroup, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	poller, err := c.vms.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete virtual machine: %w", err)
	}

	if _, err := poller.PollUntilDone(ctx, c.pollOptions()); err != nil {
		return fmt.Errorf("failed to wait for virtual machine deletion: %w", err)
	}

	return nil
}

// mergeTags overlays updates onto current. Keys not named in updates
// survive untouched; named keys are overwritten.
func mergeTags(current map[string]*string, updates map[string]string) map[string]*string {
	merged := make(map[string]*string, len(current)+len(updates))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = to.Ptr(v)
	}
	return merged
}

// appendDataDisk returns a new data-disk list with disk attached at lun.
// Existing attachments carry over untouched. An occupied LUN is an error.
func appendDataDisk(existing []*armcompute.DataDisk, disk *armcompute.Disk, lun int32) ([]*armcompute.DataDisk, error) {
	for _, dd := range existing {
		if dd.Lun != nil && *dd.Lun == lun {
			return nil, fmt.Errorf("LUN %d is already occupied", lun)
		}
	}

	updated := make([]*armcompute.DataDisk, len(existing), len(existing)+1)
	copy(updated, existing)
	return append(updated, buildDataDisks([]DataDiskAttachment{{Disk: disk, LUN: lun}})...), nil
}

// NextFreeLUN returns the lowest logical unit number above every LUN the
// machine currently uses. A machine with no data disks gets 0.
func NextFreeLUN(vm *armcompute.VirtualMachine) int32 {
	if vm == nil || vm.Properties == nil || vm.Properties.StorageProfile == nil {
		return 0
	}

	next := int32(0)
	for _, dd := range vm.Properties.StorageProfile.DataDisks {
		if dd.Lun != nil && *dd.Lun >= next {
			next = *dd.Lun + 1
		}
	}
	return next
}
