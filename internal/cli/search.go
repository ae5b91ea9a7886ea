package cli

import (
	"github.com/openavatar/openavatar-deploy/internal/cli/render"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewSearchSaltCmd creates the search-salt command
func NewSearchSaltCmd() *cobra.Command {
	var (
		contract  string
		zeros     int
		limit     uint64
		firstSalt string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "search-salt",
		Short: "Search a CREATE2 salt giving a vanity address",
		Long: `Search salts for one contract until its CREATE2 address has the requested
number of leading zeros or the attempt limit is reached. The search starts at
the contract's bestKnownSalt unless --first-salt is given. Press Ctrl-C to stop
early and print the best salt so far.`,
		Example: `  # Pick a contract interactively
  oadeploy search-salt

  # Search 8 leading zeros for the token on 8 cores
  oadeploy search-salt --contract OpenAvatarGen0Token --zeros 8 --workers 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SearchSalt.Run(cmd.Context(), usecase.SearchSaltParams{
				Contract:     contract,
				DeployType:   domain.DeploymentType(app.Config.DeployType),
				TargetZeros:  zeros,
				AttemptLimit: limit,
				FirstSalt:    firstSalt,
				Workers:      workers,
			})
			if result != nil {
				if renderErr := render.NewSaltRenderer(cmd.OutOrStdout()).Render(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract to search a salt for")
	cmd.Flags().IntVar(&zeros, "zeros", 4, "Target number of leading zero nibbles")
	cmd.Flags().Uint64Var(&limit, "limit", 100_000_000, "Maximum number of salts to try")
	cmd.Flags().StringVar(&firstSalt, "first-salt", "", "First salt to try, decimal or 0x-prefixed hex")
	cmd.Flags().IntVar(&workers, "workers", 1, "Number of parallel workers")
	addDeployTypeFlag(cmd)

	return cmd
}
