package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azvmlab/cmd/azvmlab/handlers"
)

// Run returns the run command.
//
// The run command executes the full workflow: it creates a resource group
// with randomized naming, builds out the network and disks, creates a
// Windows and a Linux virtual machine, applies tag and data-disk updates,
// enumerates the machines, deletes the Windows machine, and finally
// deletes the resource group.
func Run() *cobra.Command {
	var configPath string
	var keep bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the VM provisioning and teardown workflow",
		Long: `Run executes the demonstration workflow against your Azure subscription.

The workflow performs, in order:
  1. Create a resource group (randomized name)
  2. Create a virtual network with two subnets
  3. Create one network interface per subnet
  4. Create two managed disks (100 GB, 50 GB)
  5. Create a Windows VM with both disks attached as data disks
  6. Create a Linux VM with no data disks
  7. Apply a tag-only update to the Linux VM
  8. Create a third disk and append it to the Windows VM's data disks
  9. List the VMs in the resource group and print a summary of each
 10. Delete the Windows VM
 11. Delete the resource group

Teardown (step 11) runs even when an earlier step fails, so a partial run
never leaves resources behind. Credentials are resolved from the standard
Azure environment variables; the subscription comes from
AZURE_SUBSCRIPTION_ID or the config file.

Example:
  azvmlab run
  azvmlab run -c azvmlab.yaml --keep`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), configPath, keep)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to workflow configuration file (optional)")
	cmd.Flags().BoolVar(&keep, "keep", false, "Skip teardown and keep the provisioned resources")

	return cmd
}
