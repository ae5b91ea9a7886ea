package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/openavatar/openavatar-deploy/internal/app"
	"github.com/openavatar/openavatar-deploy/internal/config"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oadeploy",
		Short: "Deterministic deployment and asset upload for OpenAvatar",
		Long: `oadeploy deploys the OpenAvatar Gen0 contracts to deterministic CREATE2
addresses through the ImmutableCreate2Factory and uploads the encoded asset
corpus in gas-budgeted batches. Every step reads chain state first, so runs
can be repeated safely.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			withTimeout(cmd, appInstance.Config.Timeout)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts (public networks are refused)")
	rootCmd.PersistentFlags().StringP("network", "n", "localhost", "Network to use (e.g., localhost, sepolia, mainnet)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{NewDeployCmd(), NewUploadCmd(), NewConfigureMintCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewContractsCmd(), NewSearchSaltCmd()} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// withTimeout bounds the command context. The timer is released by a
// finalizer, which cobra runs even when the command fails.
func withTimeout(cmd *cobra.Command, timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	cmd.SetContext(ctx)
	cobra.OnFinalize(cancel)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// addDeployTypeFlag adds --deploy-type, read back through the runtime config
func addDeployTypeFlag(cmd *cobra.Command) {
	cmd.Flags().String("deploy-type", string(domain.DeploymentTypeTest), "Deployment config to use (test, beta, public)")
}

// addCreate2Flag adds --create2, read back through the runtime config
func addCreate2Flag(cmd *cobra.Command) {
	cmd.Flags().Bool("create2", false, "Use CREATE2 addresses through the ImmutableCreate2Factory")
}

// addGasFlags adds the EIP-1559 fee cap flags, in gwei
func addGasFlags(cmd *cobra.Command) {
	cmd.Flags().String("max-fee-per-gas", "", "Max fee per gas in gwei (default 2*baseFee + tip)")
	cmd.Flags().String("max-priority-fee-per-gas", "", "Max priority fee per gas in gwei (default node suggestion)")
}
