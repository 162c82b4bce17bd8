// Package handlers contains the business logic for CLI commands.
//
// Handlers are invoked by the cobra commands in the commands package.
// They use package-level factory variables so that tests can substitute
// mocks for configuration loading, credential resolution, and the Azure
// client.
package handlers

import (
	"context"
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/imamik/azvmlab/internal/config"
	"github.com/imamik/azvmlab/internal/platform/azure"
	"github.com/imamik/azvmlab/internal/provisioning"
	"github.com/imamik/azvmlab/internal/provisioning/compute"
	"github.com/imamik/azvmlab/internal/provisioning/infrastructure"
	"github.com/imamik/azvmlab/internal/provisioning/teardown"
)

// Factory functions for dependency injection in tests.
var (
	loadConfig = config.Load

	newCredential = func() (azcore.TokenCredential, error) {
		return azidentity.NewDefaultAzureCredential(nil)
	}

	newCloudClient = func(subscriptionID string, cred azcore.TokenCredential, timeouts *config.Timeouts) (azure.CloudManager, error) {
		return azure.NewRealClient(subscriptionID, cred, timeouts)
	}

	newWorkflowContext = provisioning.NewContext
)

// Run executes the provisioning workflow and, unless keep is set, tears
// the environment down afterwards.
//
// Teardown always runs, even when provisioning fails partway through, so
// a failed run does not leave billable resources behind. Provisioning and
// teardown failures are logged rather than returned; only setup errors
// (config, credentials, client construction) abort the run.
func Run(ctx context.Context, configPath string, keep bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	cred, err := newCredential()
	if err != nil {
		return err
	}

	cloud, err := newCloudClient(cfg.SubscriptionID, cred, config.LoadTimeouts())
	if err != nil {
		return err
	}

	wCtx := newWorkflowContext(ctx, cfg, cloud)

	phases := []provisioning.Phase{
		infrastructure.NewProvisioner(),
		compute.NewProvisioner(),
	}

	if err := provisioning.RunPhases(wCtx, phases); err != nil {
		log.Printf("Workflow failed: %v", err)
	}

	if keep {
		log.Printf("Keeping resource group %s (--keep)", wCtx.State.Names.ResourceGroup)
		return nil
	}

	if err := teardown.NewProvisioner().Provision(wCtx); err != nil {
		log.Printf("Warning: cleanup failed, resources may remain: %v", err)
	}

	return nil
}
