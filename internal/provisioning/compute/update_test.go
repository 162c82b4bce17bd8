package compute

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
)

func TestTagLinuxVM(t *testing.T) {
	var gotName string
	var gotTags map[string]string

	mock := &azure_internal.MockClient{
		UpdateVirtualMachineTagsFunc: func(_ context.Context, _, name string, tags map[string]string) (*armcompute.VirtualMachine, error) {
			gotName = name
			gotTags = tags
			return &armcompute.VirtualMachine{
				Name: to.Ptr(name),
				Tags: map[string]*string{
					"who-rocks-on-linux": to.Ptr("java"),
					"where":              to.Ptr("on azure"),
				},
			}, nil
		},
	}
	ctx := testContext(t, mock)

	err := NewProvisioner().TagLinuxVM(ctx)
	require.NoError(t, err)

	assert.Equal(t, ctx.State.Names.LinuxVM, gotName)
	assert.Equal(t, map[string]string{
		"who-rocks-on-linux": "java",
		"where":              "on azure",
	}, gotTags)
	require.NotNil(t, ctx.State.LinuxVM)
	assert.Len(t, ctx.State.LinuxVM.Tags, 2)
}

func TestAppendDataDiskUsesNextFreeLUN(t *testing.T) {
	var gotDiskSize int32
	var gotLUN int32
	var gotDiskName string

	mock := &azure_internal.MockClient{
		EnsureDiskFunc: func(_ context.Context, _, name, _ string, sizeGB int32) (*armcompute.Disk, error) {
			gotDiskSize = sizeGB
			return &armcompute.Disk{
				ID:   to.Ptr("/subscriptions/test/disks/" + name),
				Name: to.Ptr(name),
				Properties: &armcompute.DiskProperties{
					DiskSizeGB: to.Ptr(sizeGB),
				},
			}, nil
		},
		AttachDataDiskFunc: func(_ context.Context, _, vmName string, disk *armcompute.Disk, lun int32) (*armcompute.VirtualMachine, error) {
			gotLUN = lun
			gotDiskName = *disk.Name
			return vmWithDataDiskLUNs(vmName, 1, 2, lun), nil
		},
	}
	ctx := testContext(t, mock)
	seedDisks(ctx)
	ctx.State.WindowsVM = vmWithDataDiskLUNs(ctx.State.Names.WindowsVM, 1, 2)

	err := NewProvisioner().AppendDataDisk(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(50), gotDiskSize)
	assert.Equal(t, int32(3), gotLUN, "appended disk takes the first LUN after the existing ones")
	assert.Equal(t, ctx.State.Names.Disks[2], gotDiskName)
	assert.Len(t, ctx.State.Disks, 3)

	require.NotNil(t, ctx.State.WindowsVM)
	assert.Len(t, ctx.State.WindowsVM.Properties.StorageProfile.DataDisks, 3)
}

func vmWithDataDiskLUNs(name string, luns ...int32) *armcompute.VirtualMachine {
	disks := make([]*armcompute.DataDisk, len(luns))
	for i, lun := range luns {
		disks[i] = &armcompute.DataDisk{Lun: to.Ptr(lun)}
	}
	return &armcompute.VirtualMachine{
		Name: to.Ptr(name),
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				DataDisks: disks,
			},
		},
	}
}
