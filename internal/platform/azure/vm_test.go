package azure

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFreeLUN(t *testing.T) {
	tests := []struct {
		name     string
		vm       *armcompute.VirtualMachine
		expected int32
	}{
		{
			name:     "nil machine",
			vm:       nil,
			expected: 0,
		},
		{
			name:     "no data disks",
			vm:       vmWithLUNs(),
			expected: 0,
		},
		{
			name:     "luns one and two",
			vm:       vmWithLUNs(1, 2),
			expected: 3,
		},
		{
			name:     "gap is not reused",
			vm:       vmWithLUNs(0, 4),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextFreeLUN(tt.vm))
		})
	}
}

func TestBuildDataDisks(t *testing.T) {
	size := int32(100)
	disk := &armcompute.Disk{
		ID:   to.Ptr("/subscriptions/s/disks/d1"),
		Name: to.Ptr("d1"),
		Properties: &armcompute.DiskProperties{
			DiskSizeGB: &size,
		},
	}

	disks := buildDataDisks([]DataDiskAttachment{{Disk: disk, LUN: 1}})
	require.Len(t, disks, 1)

	dd := disks[0]
	assert.Equal(t, int32(1), *dd.Lun)
	assert.Equal(t, "d1", *dd.Name)
	assert.Equal(t, "/subscriptions/s/disks/d1", *dd.ManagedDisk.ID)
	assert.Equal(t, armcompute.DiskCreateOptionTypesAttach, *dd.CreateOption)
	assert.Equal(t, int32(100), *dd.DiskSizeGB)
}

func TestBuildDataDisksEmpty(t *testing.T) {
	assert.Nil(t, buildDataDisks(nil))
}

func TestMergeTagsPreservesUnnamedKeys(t *testing.T) {
	current := map[string]*string{"env": to.Ptr("lab")}

	// Two sequential updates with disjoint keys accumulate.
	first := mergeTags(current, map[string]string{"who-rocks-on-linux": "java"})
	second := mergeTags(first, map[string]string{"where": "on azure"})

	require.Len(t, second, 3)
	assert.Equal(t, "lab", *second["env"])
	assert.Equal(t, "java", *second["who-rocks-on-linux"])
	assert.Equal(t, "on azure", *second["where"])

	// A named key is overwritten, the rest survive.
	third := mergeTags(second, map[string]string{"env": "demo"})
	require.Len(t, third, 3)
	assert.Equal(t, "demo", *third["env"])
	assert.Equal(t, "on azure", *third["where"])
}

func TestAppendDataDiskPreservesAttachments(t *testing.T) {
	existing := buildDataDisks([]DataDiskAttachment{
		{Disk: testDisk("d1", 100), LUN: 1},
		{Disk: testDisk("d2", 50), LUN: 2},
	})

	updated, err := appendDataDisk(existing, testDisk("d3", 50), 3)
	require.NoError(t, err)
	require.Len(t, updated, 3)

	assert.Equal(t, int32(1), *updated[0].Lun)
	assert.Equal(t, int32(100), *updated[0].DiskSizeGB)
	assert.Equal(t, int32(2), *updated[1].Lun)
	assert.Equal(t, int32(50), *updated[1].DiskSizeGB)
	assert.Equal(t, int32(3), *updated[2].Lun)
	assert.Equal(t, "d3", *updated[2].Name)

	// The input list is not mutated.
	assert.Len(t, existing, 2)
}

func TestAppendDataDiskRejectsOccupiedLUN(t *testing.T) {
	existing := buildDataDisks([]DataDiskAttachment{
		{Disk: testDisk("d1", 100), LUN: 1},
	})

	_, err := appendDataDisk(existing, testDisk("d2", 50), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LUN 1")
}

func testDisk(name string, sizeGB int32) *armcompute.Disk {
	return &armcompute.Disk{
		ID:   to.Ptr("/subscriptions/s/disks/" + name),
		Name: to.Ptr(name),
		Properties: &armcompute.DiskProperties{
			DiskSizeGB: to.Ptr(sizeGB),
		},
	}
}

func vmWithLUNs(luns ...int32) *armcompute.VirtualMachine {
	var disks []*armcompute.DataDisk
	for i := range luns {
		disks = append(disks, &armcompute.DataDisk{Lun: &luns[i]})
	}
	return &armcompute.VirtualMachine{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				DataDisks: disks,
			},
		},
	}
}
