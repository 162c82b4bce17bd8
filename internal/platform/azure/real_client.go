package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/imamik/azvmlab/internal/config"
)

// RealClient implements CloudManager using the Azure Resource Manager API.
type RealClient struct {
	groups     *armresources.ResourceGroupsClient
	vnets      *armnetwork.VirtualNetworksClient
	interfaces *armnetwork.InterfacesClient
	disks      *armcompute.DisksClient
	vms        *armcompute.VirtualMachinesClient

	timeouts *config.Timeouts
}

// NewRealClient creates a RealClient for the given subscription. All
// per-kind clients share the one credential.
func NewRealClient(subscriptionID string, credential azcore.TokenCredential, timeouts *config.Timeouts) (*RealClient, error) {
	groups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	vnets, err := armnetwork.NewVirtualNetworksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	interfaces, err := armnetwork.NewInterfacesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create interfaces client: %w", err)
	}
	disks, err := armcompute.NewDisksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create disks client: %w", err)
	}
	vms, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual machines client: %w", err)
	}

	return &RealClient{
		groups:     groups,
		vnets:      vnets,
		interfaces: interfaces,
		disks:      disks,
		vms:        vms,
		timeouts:   timeouts,
	}, nil
}

func (c *RealClient) pollOptions() *runtime.PollUntilDoneOptions {
	return &runtime.PollUntilDoneOptions{Frequency: c.timeouts.PollFrequency}
}

var _ CloudManager = (*RealClient)(nil)
