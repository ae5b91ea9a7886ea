package cli

import (
	"github.com/openavatar/openavatar-deploy/internal/cli/render"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewConfigureMintCmd creates the configure-mint command
func NewConfigureMintCmd() *cobra.Command {
	var (
		state    string
		softCap  uint16
		priceEth string
	)

	cmd := &cobra.Command{
		Use:   "configure-mint",
		Short: "Set the token mint state, supply soft cap and price",
		Long: `Apply mint settings to OpenAvatarGen0Token. Settings already in place are
skipped. Opening the public mint also raises the soft cap to 8192 and sets the
price to 0.1 ETH unless --soft-cap or --price-eth say otherwise.`,
		Example: `  # Open the public mint
  oadeploy configure-mint --create2 --state public

  # Raise the soft cap only
  oadeploy configure-mint --create2 --soft-cap 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ConfigureMintParams{
				DeployType: domain.DeploymentType(app.Config.DeployType),
				Create2:    app.Config.Create2,
			}
			if state != "" {
				s, err := domain.ParseMintState(state)
				if err != nil {
					return err
				}
				params.State = &s
			}
			if cmd.Flags().Changed("soft-cap") {
				params.SoftCap = &softCap
			}
			if priceEth != "" {
				if params.Price, err = domain.ParseEther(priceEth); err != nil {
					return err
				}
			}

			status, err := app.ConfigureMint.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewMintRenderer(cmd.OutOrStdout()).Render(status)
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Mint state: disabled, only-owner or public")
	cmd.Flags().Uint16Var(&softCap, "soft-cap", 0, "Supply soft cap (can only increase)")
	cmd.Flags().StringVar(&priceEth, "price-eth", "", "Mint price in ETH")
	addCreate2Flag(cmd)
	addDeployTypeFlag(cmd)
	addGasFlags(cmd)

	return cmd
}
