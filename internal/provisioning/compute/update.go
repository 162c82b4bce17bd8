package compute

import (
	"fmt"

	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
	"github.com/imamik/azvmlab/internal/provisioning"
	"github.com/imamik/azvmlab/internal/util/ptr"
)

// linuxVMTags are merged into the Linux machine's tags. The update is
// additive: keys already on the machine and not named here survive.
var linuxVMTags = map[string]string{
	"who-rocks-on-linux": "java",
	"where":              "on azure",
}

// TagLinuxVM applies the tag-only update to the Linux machine.
func (p *Provisioner) TagLinuxVM(ctx *provisioning.Context) error {
	names := ctx.State.Names

	vm, err := ctx.Cloud.UpdateVirtualMachineTags(ctx, names.ResourceGroup, names.LinuxVM, linuxVMTags)
	if err != nil {
		return fmt.Errorf("failed to tag %s: %w", names.LinuxVM, err)
	}
	ctx.State.LinuxVM = vm

	provisioning.LogResourceUpdated(ctx.Observer, phaseName, "virtual machine", names.LinuxVM)
	return nil
}

// AppendDataDisk creates the third managed disk and appends it to the
// Windows machine's data-disk list at the next free LUN, preserving the
// disks attached at creation time.
func (p *Provisioner) AppendDataDisk(ctx *provisioning.Context) error {
	names := ctx.State.Names
	diskName := names.Disks[2]

	provisioning.LogResourceCreating(ctx.Observer, phaseName, "managed disk", diskName)

	disk, err := ctx.Cloud.EnsureDisk(ctx, names.ResourceGroup, diskName, ctx.Config.Location, ctx.Config.ExtraDiskSizeGB)
	if err != nil {
		return fmt.Errorf("failed to ensure disk %s: %w", diskName, err)
	}
	ctx.State.Disks = append(ctx.State.Disks, disk)

	provisioning.LogResourceCreated(ctx.Observer, phaseName, "managed disk", diskName, ptr.Deref(disk.ID))

	lun := azure_internal.NextFreeLUN(ctx.State.WindowsVM)
	vm, err := ctx.Cloud.AttachDataDisk(ctx, names.ResourceGroup, names.WindowsVM, disk, lun)
	if err != nil {
		return fmt.Errorf("failed to attach %s to %s: %w", diskName, names.WindowsVM, err)
	}
	ctx.State.WindowsVM = vm

	ctx.Observer.Printf("[%s] attached %s to %s at LUN %d", phaseName, diskName, names.WindowsVM, lun)
	return nil
}
