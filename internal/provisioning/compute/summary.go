package compute

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"

	"github.com/imamik/azvmlab/internal/provisioning"
	"github.com/imamik/azvmlab/internal/util/ptr"
)

// Summarize enumerates all virtual machines in the resource group and
// records one summary per machine in the state.
func (p *Provisioner) Summarize(ctx *provisioning.Context) error {
	names := ctx.State.Names

	machines, err := ctx.Cloud.ListVirtualMachines(ctx, names.ResourceGroup)
	if err != nil {
		return fmt.Errorf("failed to list virtual machines: %w", err)
	}

	ctx.Observer.Printf("[%s] %d virtual machine(s) in %s", phaseName, len(machines), names.ResourceGroup)

	ctx.State.Summaries = ctx.State.Summaries[:0]
	for _, vm := range machines {
		summary := summarize(vm)
		ctx.State.Summaries = append(ctx.State.Summaries, summary)
		printSummary(ctx.Observer, summary)
	}

	return nil
}

// summarize extracts the identifying attributes of one machine.
func summarize(vm *armcompute.VirtualMachine) provisioning.VMSummary {
	summary := provisioning.VMSummary{
		Name:     ptr.Deref(vm.Name),
		TagCount: len(vm.Tags),
	}

	props := vm.Properties
	if props == nil {
		return summary
	}

	if sp := props.StorageProfile; sp != nil {
		if img := sp.ImageReference; img != nil {
			summary.ImagePublisher = ptr.Deref(img.Publisher)
			summary.ImageOffer = ptr.Deref(img.Offer)
			summary.ImageSKU = ptr.Deref(img.SKU)
		}
		if sp.OSDisk != nil {
			summary.OSDiskName = ptr.Deref(sp.OSDisk.Name)
		}
		for _, dd := range sp.DataDisks {
			entry := provisioning.DataDiskSummary{Name: ptr.Deref(dd.Name)}
			if dd.Lun != nil {
				entry.LUN = *dd.Lun
			}
			if dd.DiskSizeGB != nil {
				entry.SizeGB = *dd.DiskSizeGB
			}
			summary.DataDisks = append(summary.DataDisks, entry)
		}
	}

	summary.InterfaceName = primaryInterfaceName(props.NetworkProfile)

	return summary
}

// primaryInterfaceName returns the name of the machine's primary network
// interface, falling back to the first interface when none is marked
// primary. Interface references only carry ARM IDs; the name is the last
// ID segment.
func primaryInterfaceName(np *armcompute.NetworkProfile) string {
	if np == nil || len(np.NetworkInterfaces) == 0 {
		return ""
	}

	ref := np.NetworkInterfaces[0]
	for _, nic := range np.NetworkInterfaces {
		if nic.Properties != nil && nic.Properties.Primary != nil && *nic.Properties.Primary {
			ref = nic
			break
		}
	}

	return lastIDSegment(ptr.Deref(ref.ID))
}

func lastIDSegment(id string) string {
	if id == "" {
		return ""
	}
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}

func printSummary(observer provisioning.Observer, s provisioning.VMSummary) {
	observer.Printf("[%s]   %s: image=%s/%s/%s nic=%s osdisk=%s tags=%d", phaseName,
		s.Name, s.ImagePublisher, s.ImageOffer, s.ImageSKU, s.InterfaceName, s.OSDiskName, s.TagCount)
	for _, dd := range s.DataDisks {
		observer.Printf("[%s]     data disk lun=%d name=%s size=%dGB", phaseName, dd.LUN, dd.Name, dd.SizeGB)
	}
}
