package compute

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
	"github.com/imamik/azvmlab/internal/provisioning"
)

func fixtureVM(name string) *armcompute.VirtualMachine {
	return &armcompute.VirtualMachine{
		Name: to.Ptr(name),
		Tags: map[string]*string{"env": to.Ptr("lab")},
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: &armcompute.ImageReference{
					Publisher: to.Ptr("Canonical"),
					Offer:     to.Ptr("0001-com-ubuntu-server-jammy"),
					SKU:       to.Ptr("22_04-lts-gen2"),
				},
				OSDisk: &armcompute.OSDisk{
					Name: to.Ptr(name + "-osdisk"),
				},
				DataDisks: []*armcompute.DataDisk{
					{
						Lun:        to.Ptr(int32(1)),
						Name:       to.Ptr("disk1"),
						DiskSizeGB: to.Ptr(int32(100)),
					},
				},
			},
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{ID: to.Ptr("/subscriptions/test/networkInterfaces/nic1")},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	mock := &azure_internal.MockClient{
		ListVirtualMachinesFunc: func(_ context.Context, _ string) ([]*armcompute.VirtualMachine, error) {
			return []*armcompute.VirtualMachine{
				fixtureVM("vm-a"),
				fixtureVM("vm-b"),
			}, nil
		},
	}
	ctx := testContext(t, mock)

	err := NewProvisioner().Summarize(ctx)
	require.NoError(t, err)

	require.Len(t, ctx.State.Summaries, 2)

	s := ctx.State.Summaries[0]
	assert.Equal(t, "vm-a", s.Name)
	assert.Equal(t, "Canonical", s.ImagePublisher)
	assert.Equal(t, "0001-com-ubuntu-server-jammy", s.ImageOffer)
	assert.Equal(t, "22_04-lts-gen2", s.ImageSKU)
	assert.Equal(t, "nic1", s.InterfaceName)
	assert.Equal(t, "vm-a-osdisk", s.OSDiskName)
	assert.Equal(t, 1, s.TagCount)
	require.Len(t, s.DataDisks, 1)
	assert.Equal(t, provisioning.DataDiskSummary{LUN: 1, Name: "disk1", SizeGB: 100}, s.DataDisks[0])
}

func TestSummarizeHandlesBareVM(t *testing.T) {
	mock := &azure_internal.MockClient{
		ListVirtualMachinesFunc: func(_ context.Context, _ string) ([]*armcompute.VirtualMachine, error) {
			return []*armcompute.VirtualMachine{{Name: to.Ptr("bare")}}, nil
		},
	}
	ctx := testContext(t, mock)

	err := NewProvisioner().Summarize(ctx)
	require.NoError(t, err)

	require.Len(t, ctx.State.Summaries, 1)
	assert.Equal(t, "bare", ctx.State.Summaries[0].Name)
	assert.Empty(t, ctx.State.Summaries[0].InterfaceName)
}

func TestPrimaryInterfaceName(t *testing.T) {
	tests := []struct {
		name     string
		profile  *armcompute.NetworkProfile
		expected string
	}{
		{
			name:     "nil profile",
			profile:  nil,
			expected: "",
		},
		{
			name: "single interface",
			profile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{ID: to.Ptr("/sub/x/networkInterfaces/only")},
				},
			},
			expected: "only",
		},
		{
			name: "primary flag wins over order",
			profile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{ID: to.Ptr("/sub/x/networkInterfaces/first")},
					{
						ID: to.Ptr("/sub/x/networkInterfaces/second"),
						Properties: &armcompute.NetworkInterfaceReferenceProperties{
							Primary: to.Ptr(true),
						},
					},
				},
			},
			expected: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, primaryInterfaceName(tt.profile))
		})
	}
}
