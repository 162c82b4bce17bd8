package provisioning

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/imamik/azvmlab/internal/util/naming"
)

// Names holds the generated resource names for one run. All names share a
// random suffix so concurrent or repeated runs never collide.
type Names struct {
	ResourceGroup  string
	VirtualNetwork string
	Subnets        []string
	Interfaces     []string
	Disks          []string
	WindowsVM      string
	LinuxVM        string
}

// NewNames generates the names for a run from a random suffix.
func NewNames(suffix string) Names {
	return Names{
		ResourceGroup:  naming.ResourceGroup(suffix),
		VirtualNetwork: naming.VirtualNetwork(suffix),
		Subnets:        []string{naming.Subnet(1), naming.Subnet(2)},
		Interfaces:     []string{naming.Interface(suffix, 1), naming.Interface(suffix, 2)},
		Disks:          []string{naming.Disk(suffix, 1), naming.Disk(suffix, 2), naming.Disk(suffix, 3)},
		WindowsVM:      naming.WindowsVM(suffix),
		LinuxVM:        naming.LinuxVM(suffix),
	}
}

// DataDiskSummary describes one attached data disk.
type DataDiskSummary struct {
	LUN    int32
	Name   string
	SizeGB int32
}

// VMSummary captures the identifying attributes of one virtual machine,
// as reported by the enumeration step.
type VMSummary struct {
	Name           string
	ImagePublisher string
	ImageOffer     string
	ImageSKU       string
	InterfaceName  string
	OSDiskName     string
	DataDisks      []DataDiskSummary
	TagCount       int
}

// State holds the shared results of workflow phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	Names Names

	// Infrastructure results (populated by infrastructure provisioner).
	// ResourceGroup is recorded before any step that can fail, so the
	// teardown phase can always attempt deletion.
	ResourceGroup  *armresources.ResourceGroup
	VirtualNetwork *armnetwork.VirtualNetwork
	Interfaces     []*armnetwork.Interface

	// Compute results (populated by compute provisioner)
	Disks     []*armcompute.Disk
	WindowsVM *armcompute.VirtualMachine
	LinuxVM   *armcompute.VirtualMachine
	Summaries []VMSummary
}

// NewState creates an empty workflow state with freshly generated names.
func NewState() *State {
	return &State{
		Names: NewNames(naming.Suffix()),
	}
}
