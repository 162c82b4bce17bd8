package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
)

// EnsureDisk ensures an empty managed disk of the given size exists in
// the resource group.
func (c *RealClient) EnsureDisk(ctx context.Context, resourceGroup, name, location string, sizeGB int32) (*armcompute.Disk, error) {
	existing, err := c.disks.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return &existing.Disk, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("failed to get disk: %w", err)
	}

	poller, err := c.disks.BeginCreateOrUpdate(ctx, resourceGroup, name, armcompute.Disk{
		Location: to.Ptr(location),
		SKU: &armcompute.DiskSKU{
			Name: to.Ptr(armcompute.DiskStorageAccountTypesStandardLRS),
		},
		Properties: &armcompute.DiskProperties{
			CreationData: &armcompute.CreationData{
				CreateOption: to.Ptr(armcompute.DiskCreateOptionEmpty),
			},
			DiskSizeGB: to.Ptr(sizeGB),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for disk creation: %w", err)
	}

	return &resp.Disk, nil
}
