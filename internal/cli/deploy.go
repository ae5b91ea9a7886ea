package cli

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/cli/render"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy and wire the OpenAvatar contracts",
		Long: `Run the numbered deployment sequence. Each step checks the chain first and
only sends a transaction when something is missing, so an interrupted run can
be resumed by running it again.`,
		Example: `  # Deploy everything to a local node
  oadeploy deploy --create2

  # Run only the first 9 steps (all contract deployments)
  oadeploy deploy --create2 --steps 9

  # Deploy the public set to mainnet with a fixed tip
  oadeploy deploy -n mainnet --create2 --deploy-type public --max-priority-fee-per-gas 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContracts.Run(cmd.Context(), usecase.DeployParams{
				DeployType: domain.DeploymentType(app.Config.DeployType),
				Steps:      steps,
				Create2:    app.Config.Create2,
			})
			if result != nil {
				renderer := render.NewDeployRenderer(cmd.OutOrStdout(), func(c domain.DeployedContract) string {
					if c.TxHash == (common.Hash{}) {
						return ""
					}
					return app.Guard.TxURL(c.TxHash)
				})
				if renderErr := renderer.Render(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 100, "Number of deployment steps to run")
	addCreate2Flag(cmd)
	addDeployTypeFlag(cmd)
	addGasFlags(cmd)

	return cmd
}
