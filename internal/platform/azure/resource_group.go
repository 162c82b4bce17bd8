package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates the resource group if it does not exist.
func (c *RealClient) EnsureResourceGroup(ctx context.Context, name, location string) (*armresources.ResourceGroup, error) {
	existing, err := c.groups.Get(ctx, name, nil)
	if err == nil {
		return &existing.ResourceGroup, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("failed to get resource group: %w", err)
	}

	resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource group: %w", err)
	}

	return &resp.ResourceGroup, nil
}

// DeleteResourceGroup deletes the resource group and blocks until the
// deletion completes. A group that is already gone is not an error.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	poller, err := c.groups.BeginDelete(ctx, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete resource group: %w", err)
	}

	if _, err := poller.PollUntilDone(ctx, c.pollOptions()); err != nil {
		return fmt.Errorf("failed to wait for resource group deletion: %w", err)
	}

	return nil
}
