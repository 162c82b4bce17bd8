package teardown

import (
	"fmt"

	"github.com/imamik/azvmlab/internal/provisioning"
)

const phaseName = "teardown"

// Provisioner handles deletion of the run's resource group.
type Provisioner struct{}

// NewProvisioner creates a new teardown provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the phase name.
func (p *Provisioner) Name() string {
	return phaseName
}

// Provision deletes the resource group recorded in the state. A run that
// never created a resource group is a benign no-op. Deleting the group
// removes every resource inside it, so nothing else needs individual
// deletion.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	rg := ctx.State.ResourceGroup
	if rg == nil {
		ctx.Observer.Printf("[%s] no resource group was created, nothing to clean up", phaseName)
		return nil
	}

	name := ctx.State.Names.ResourceGroup
	if rg.Name != nil {
		name = *rg.Name
	}

	provisioning.LogResourceDeleting(ctx.Observer, phaseName, "resource group", name)

	if err := ctx.Cloud.DeleteResourceGroup(ctx, name); err != nil {
		return fmt.Errorf("failed to delete resource group %s: %w", name, err)
	}
	ctx.State.ResourceGroup = nil

	provisioning.LogResourceDeleted(ctx.Observer, phaseName, "resource group", name)
	return nil
}
