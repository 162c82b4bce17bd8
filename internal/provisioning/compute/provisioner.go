package compute

import (
	"fmt"

	"github.com/imamik/azvmlab/internal/config"
	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
	"github.com/imamik/azvmlab/internal/provisioning"
	"github.com/imamik/azvmlab/internal/util/ptr"
)

const phaseName = "compute"

// LUNs of the two disks attached to the Windows machine at creation time.
// The appended disk takes the next free LUN (3).
var initialLUNs = []int32{1, 2}

// Provisioner handles disk and virtual machine provisioning.
type Provisioner struct{}

// NewProvisioner creates a new compute provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision runs the compute steps in order: initial disks, both virtual
// machines, the tag update, the disk append, the enumeration summary, and
// finally the deletion of the Windows machine.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if err := p.ProvisionInitialDisks(ctx); err != nil {
		return err
	}
	if err := p.ProvisionWindowsVM(ctx); err != nil {
		return err
	}
	if err := p.ProvisionLinuxVM(ctx); err != nil {
		return err
	}
	if err := p.TagLinuxVM(ctx); err != nil {
		return err
	}
	if err := p.AppendDataDisk(ctx); err != nil {
		return err
	}
	if err := p.Summarize(ctx); err != nil {
		return err
	}
	return p.DeleteWindowsVM(ctx)
}

// ProvisionInitialDisks creates the two managed disks attached to the
// Windows machine at creation time.
func (p *Provisioner) ProvisionInitialDisks(ctx *provisioning.Context) error {
	names := ctx.State.Names

	for i, size := range ctx.Config.DataDiskSizesGB {
		diskName := names.Disks[i]
		provisioning.LogResourceCreating(ctx.Observer, phaseName, "managed disk", diskName)

		disk, err := ctx.Cloud.EnsureDisk(ctx, names.ResourceGroup, diskName, ctx.Config.Location, size)
		if err != nil {
			return fmt.Errorf("failed to ensure disk %s: %w", diskName, err)
		}
		ctx.State.Disks = append(ctx.State.Disks, disk)

		provisioning.LogResourceCreated(ctx.Observer, phaseName, "managed disk", diskName, ptr.Deref(disk.ID))
	}

	return nil
}

// ProvisionWindowsVM creates the Windows machine on the first network
// interface with both initial disks attached as data disks.
func (p *Provisioner) ProvisionWindowsVM(ctx *provisioning.Context) error {
	names := ctx.State.Names

	if len(ctx.State.Interfaces) < 1 {
		return fmt.Errorf("no network interface available for %s", names.WindowsVM)
	}

	attachments := make([]azure_internal.DataDiskAttachment, len(ctx.State.Disks))
	for i, disk := range ctx.State.Disks {
		attachments[i] = azure_internal.DataDiskAttachment{Disk: disk, LUN: initialLUNs[i]}
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseName, "virtual machine", names.WindowsVM)

	vm, err := ctx.Cloud.CreateVirtualMachine(ctx, names.ResourceGroup, ctx.Config.Location, azure_internal.VirtualMachineSpec{
		Name:          names.WindowsVM,
		Size:          ctx.Config.WindowsVM.Size,
		OS:            azure_internal.OSWindows,
		Image:         imageRef(ctx.Config.WindowsVM),
		AdminUsername: ctx.Config.AdminUsername,
		AdminPassword: ctx.Config.AdminPassword,
		InterfaceID:   ptr.Deref(ctx.State.Interfaces[0].ID),
		DataDisks:     attachments,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", names.WindowsVM, err)
	}
	ctx.State.WindowsVM = vm

	provisioning.LogResourceCreated(ctx.Observer, phaseName, "virtual machine", names.WindowsVM, ptr.Deref(vm.ID))
	return nil
}

// ProvisionLinuxVM creates the Linux machine on the second network
// interface, with no data disks at creation time.
func (p *Provisioner) ProvisionLinuxVM(ctx *provisioning.Context) error {
	names := ctx.State.Names

	if len(ctx.State.Interfaces) < 2 {
		return fmt.Errorf("no network interface available for %s", names.LinuxVM)
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseName, "virtual machine", names.LinuxVM)

	vm, err := ctx.Cloud.CreateVirtualMachine(ctx, names.ResourceGroup, ctx.Config.Location, azure_internal.VirtualMachineSpec{
		Name:          names.LinuxVM,
		Size:          ctx.Config.LinuxVM.Size,
		OS:            azure_internal.OSLinux,
		Image:         imageRef(ctx.Config.LinuxVM),
		AdminUsername: ctx.Config.AdminUsername,
		AdminPassword: ctx.Config.AdminPassword,
		InterfaceID:   ptr.Deref(ctx.State.Interfaces[1].ID),
	})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", names.LinuxVM, err)
	}
	ctx.State.LinuxVM = vm

	provisioning.LogResourceCreated(ctx.Observer, phaseName, "virtual machine", names.LinuxVM, ptr.Deref(vm.ID))
	return nil
}

// DeleteWindowsVM deletes the Windows machine by its handle.
func (p *Provisioner) DeleteWindowsVM(ctx *provisioning.Context) error {
	names := ctx.State.Names
	provisioning.LogResourceDeleting(ctx.Observer, phaseName, "virtual machine", names.WindowsVM)

	if err := ctx.Cloud.DeleteVirtualMachine(ctx, names.ResourceGroup, names.WindowsVM); err != nil {
		return fmt.Errorf("failed to delete %s: %w", names.WindowsVM, err)
	}
	ctx.State.WindowsVM = nil

	provisioning.LogResourceDeleted(ctx.Observer, phaseName, "virtual machine", names.WindowsVM)
	return nil
}

func imageRef(vm config.VMConfig) azure_internal.ImageReference {
	return azure_internal.ImageReference{
		Publisher: vm.ImagePublisher,
		Offer:     vm.ImageOffer,
		SKU:       vm.ImageSKU,
		Version:   vm.ImageVersion,
	}
}
