package cli

import (
	"github.com/openavatar/openavatar-deploy/internal/cli/render"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	var (
		pose    string
		oneEach bool
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload palettes and patterns to the asset store",
		Long: `Compare the local corpus with what the asset store already holds and upload
the difference in batches that fit under the per-transaction gas limit.`,
		Example: `  # Upload everything missing for the default pose
  oadeploy upload --create2

  # Upload one more pattern per layer, for quick rendering checks
  oadeploy upload --create2 --one-each

  # Use smaller batches
  oadeploy upload --create2 --gas-limit 8000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if pose == "" && app.Config.Project != nil {
				pose = app.Config.Project.Upload.Pose
			}

			result, err := app.UploadAssets.Run(cmd.Context(), usecase.UploadParams{
				DeployType: domain.DeploymentType(app.Config.DeployType),
				Create2:    app.Config.Create2,
				Pose:       pose,
				OneEach:    oneEach,
				GasLimit:   app.Config.UploadGasLimit,
			})
			if err != nil {
				return err
			}

			return render.NewUploadRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&pose, "pose", "", "Pose whose patterns to upload (default from oadeploy.toml, IdleDown0)")
	cmd.Flags().BoolVar(&oneEach, "one-each", false, "Upload only the next pattern of each layer")
	cmd.Flags().Uint64("gas-limit", 0, "Gas ceiling per upload transaction (default 15000000)")
	addCreate2Flag(cmd)
	addDeployTypeFlag(cmd)
	addGasFlags(cmd)

	return cmd
}
