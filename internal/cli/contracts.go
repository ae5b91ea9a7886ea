package cli

import (
	"fmt"

	"github.com/openavatar/openavatar-deploy/internal/cli/render"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Show configured contract addresses and whether they are deployed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			view, err := app.ResolveContracts.Run(cmd.Context(), usecase.ResolveContractsParams{
				DeployType: domain.DeploymentType(app.Config.DeployType),
				Create2:    app.Config.Create2,
			})
			if err != nil {
				return err
			}

			if err := render.NewContractsRenderer(cmd.OutOrStdout()).Render(view); err != nil {
				return err
			}
			if missing := view.Missing(); len(missing) > 0 {
				return fmt.Errorf("%d contracts have no code, run deploy first", len(missing))
			}
			return nil
		},
	}

	addCreate2Flag(cmd)
	addDeployTypeFlag(cmd)

	return cmd
}
