package infrastructure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"

	azure_internal "github.com/imamik/azvmlab/internal/platform/azure"
	"github.com/imamik/azvmlab/internal/provisioning"
	"github.com/imamik/azvmlab/internal/util/ptr"
)

const phaseName = "infrastructure"

// Provisioner handles infrastructure provisioning.
type Provisioner struct{}

// NewProvisioner creates a new infrastructure provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision creates the resource group, virtual network, and network
// interfaces, in that order.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if err := p.ProvisionResourceGroup(ctx); err != nil {
		return err
	}
	if err := p.ProvisionNetwork(ctx); err != nil {
		return err
	}
	return p.ProvisionInterfaces(ctx)
}

// ProvisionResourceGroup creates the resource group and records its handle
// in the state. The handle is recorded before any later step can fail so
// the teardown phase can always attempt deletion.
func (p *Provisioner) ProvisionResourceGroup(ctx *provisioning.Context) error {
	name := ctx.State.Names.ResourceGroup
	provisioning.LogResourceCreating(ctx.Observer, phaseName, "resource group", name)

	rg, err := ctx.Cloud.EnsureResourceGroup(ctx, name, ctx.Config.Location)
	if err != nil {
		return fmt.Errorf("failed to ensure resource group: %w", err)
	}
	ctx.State.ResourceGroup = rg

	provisioning.LogResourceCreated(ctx.Observer, phaseName, "resource group", name, ptr.Deref(rg.ID))
	return nil
}

// ProvisionNetwork creates the virtual network with both subnets.
func (p *Provisioner) ProvisionNetwork(ctx *provisioning.Context) error {
	names := ctx.State.Names
	provisioning.LogResourceCreating(ctx.Observer, phaseName, "virtual network", names.VirtualNetwork)

	subnets := make([]azure_internal.SubnetSpec, len(names.Subnets))
	for i, subnetName := range names.Subnets {
		subnets[i] = azure_internal.SubnetSpec{
			Name:          subnetName,
			AddressPrefix: ctx.Config.Network.SubnetPrefixes[i],
		}
	}

	vnet, err := ctx.Cloud.EnsureVirtualNetwork(ctx, names.ResourceGroup, names.VirtualNetwork, ctx.Config.Location, ctx.Config.Network.AddressSpace, subnets)
	if err != nil {
		return fmt.Errorf("failed to ensure virtual network: %w", err)
	}
	ctx.State.VirtualNetwork = vnet

	provisioning.LogResourceCreated(ctx.Observer, phaseName, "virtual network", names.VirtualNetwork, ptr.Deref(vnet.ID))
	return nil
}

// ProvisionInterfaces creates one network interface per subnet.
func (p *Provisioner) ProvisionInterfaces(ctx *provisioning.Context) error {
	names := ctx.State.Names

	for i, nicName := range names.Interfaces {
		subnetID, err := subnetID(ctx.State.VirtualNetwork, names.Subnets[i])
		if err != nil {
			return err
		}

		provisioning.LogResourceCreating(ctx.Observer, phaseName, "network interface", nicName)

		nic, err := ctx.Cloud.EnsureInterface(ctx, names.ResourceGroup, nicName, ctx.Config.Location, subnetID)
		if err != nil {
			return fmt.Errorf("failed to ensure network interface %s: %w", nicName, err)
		}
		ctx.State.Interfaces = append(ctx.State.Interfaces, nic)

		provisioning.LogResourceCreated(ctx.Observer, phaseName, "network interface", nicName, ptr.Deref(nic.ID))
	}

	return nil
}

// subnetID finds the ID of a named subnet inside a provisioned network.
func subnetID(vnet *armnetwork.VirtualNetwork, name string) (string, error) {
	if vnet == nil || vnet.Properties == nil {
		return "", fmt.Errorf("virtual network has no properties")
	}
	for _, s := range vnet.Properties.Subnets {
		if s.Name != nil && *s.Name == name && s.ID != nil {
			return *s.ID, nil
		}
	}
	return "", fmt.Errorf("subnet %s not found in virtual network", name)
}
