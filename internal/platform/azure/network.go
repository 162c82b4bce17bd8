package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// EnsureVirtualNetwork ensures a virtual network with the given address
// space and subnets exists in the resource group.
func (c *RealClient) EnsureVirtualNetwork(ctx context.Context, resourceGroup, name, location, addressSpace string, subnets []SubnetSpec) (*armnetwork.VirtualNetwork, error) {
	existing, err := c.vnets.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return &existing.VirtualNetwork, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("failed to get virtual network: %w", err)
	}

	subnetParams := make([]*armnetwork.Subnet, 0, len(subnets))
	for _, s := range subnets {
		subnetParams = append(subnetParams, &armnetwork.Subnet{
			Name: to.Ptr(s.Name),
			Properties: &armnetwork.SubnetPropertiesFormat{
				AddressPrefix: to.Ptr(s.AddressPrefix),
			},
		})
	}

	poller, err := c.vnets.BeginCreateOrUpdate(ctx, resourceGroup, name, armnetwork.VirtualNetwork{
		Location: to.Ptr(location),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(addressSpace)},
			},
			Subnets: subnetParams,
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual network: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for virtual network creation: %w", err)
	}

	return &resp.VirtualNetwork, nil
}

// EnsureInterface ensures a network interface exists with one dynamic
// private IP configuration in the given subnet.
func (c *RealClient) EnsureInterface(ctx context.Context, resourceGroup, name, location, subnetID string) (*armnetwork.Interface, error) {
	existing, err := c.interfaces.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return &existing.Interface, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("failed to get network interface: %w", err)
	}

	poller, err := c.interfaces.BeginCreateOrUpdate(ctx, resourceGroup, name, armnetwork.Interface{
		Location: to.Ptr(location),
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{
				{
					Name: to.Ptr("ipconfig1"),
					Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{
						Subnet: &armnetwork.Subnet{
							ID: to.Ptr(subnetID),
						},
						PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
					},
				},
			},
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network interface: %w", err)
	}

	resp, err := poller.PollUntilDone(ctx, c.pollOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to wait for network interface creation: %w", err)
	}

	return &resp.Interface, nil
}
