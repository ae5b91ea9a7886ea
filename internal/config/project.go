package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
)

// ProjectFileName is the project file looked up from the working directory upwards
const ProjectFileName = "oadeploy.toml"

// loadEnvFiles loads .env then .env.local from the project root. Variables
// already present in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig reads oadeploy.toml over the defaults. A missing file
// yields the defaults.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	cfg := config.DefaultProjectConfig()

	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		network.ExplorerURL = os.ExpandEnv(network.ExplorerURL)
		cfg.Networks[name] = network
	}
	return cfg, nil
}

// resolvePath makes p absolute against the project root
func resolvePath(projectRoot, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectRoot, p)
}
