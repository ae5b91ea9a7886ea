package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	deployType, err := domain.ParseDeploymentType(v.GetString("deploy_type"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ArtifactsDir:   resolvePath(projectRoot, project.Paths.Artifacts),
		DeploymentsDir: resolvePath(projectRoot, project.Paths.Deployments),
		CorpusDir:      resolvePath(projectRoot, project.Paths.Corpus),
		DeployType:     string(deployType),
		Create2:        v.GetBool("create2"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		UploadGasLimit: project.Upload.GasLimit,
		PrivateKey:     strings.TrimSpace(v.GetString("private_key")),
		Local:          localNetworks(project),
		Project:        project,
	}

	if gasLimit := v.GetUint64("gas_limit"); gasLimit > 0 {
		cfg.UploadGasLimit = gasLimit
	}

	if cfg.Gas.MaxFeePerGas, err = gweiSetting(v, "max_fee_per_gas"); err != nil {
		return nil, err
	}
	if cfg.Gas.MaxPriorityFeePerGas, err = gweiSetting(v, "max_priority_fee_per_gas"); err != nil {
		return nil, err
	}

	if networkName := v.GetString("network"); networkName != "" {
		network, err := ResolveNetwork(project, networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find oadeploy.toml.
// Without one the current directory is the root and defaults apply.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("OADEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	_ = v.BindEnv("private_key", "OADEPLOY_PRIVATE_KEY", "DEPLOYER_PRIVATE_KEY")

	v.SetDefault("network", "localhost")
	v.SetDefault("deploy_type", string(domain.DeploymentTypeTest))
	v.SetDefault("timeout", "0s")
	v.SetDefault("gas_limit", 0)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name such as non-interactive to its config key
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func gweiSetting(v *viper.Viper, key string) (*big.Int, error) {
	raw := v.GetString(key)
	if raw == "" {
		return nil, nil
	}
	wei, err := domain.ParseGwei(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", strings.ReplaceAll(key, "_", "-"), raw, err)
	}
	return wei, nil
}
