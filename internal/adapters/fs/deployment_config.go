package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// deploymentFile is the on-disk layout of deployments/<type>.json
type deploymentFile struct {
	Deployer  common.Address                  `json:"deployer"`
	Contracts map[string]deploymentFileEntry `json:"contracts"`
}

type deploymentFileEntry struct {
	Create2Address    common.Address `json:"create2Address"`
	NonCreate2Address common.Address `json:"nonCreate2Address"`
	Args              []string       `json:"args"`
	BestKnownSalt     string         `json:"bestKnownSalt"`
}

// DeploymentConfigStoreAdapter loads deployment configs merged with compiled artifacts
type DeploymentConfigStoreAdapter struct {
	deploymentsDir string
	artifacts      *ArtifactLoader
}

// NewDeploymentConfigStoreAdapter creates a new DeploymentConfigStoreAdapter
func NewDeploymentConfigStoreAdapter(cfg *config.RuntimeConfig) *DeploymentConfigStoreAdapter {
	return &DeploymentConfigStoreAdapter{
		deploymentsDir: cfg.DeploymentsDir,
		artifacts:      NewArtifactLoader(cfg.ArtifactsDir),
	}
}

// Path returns the config file of a deployment type
func (s *DeploymentConfigStoreAdapter) Path(deployType domain.DeploymentType) string {
	return filepath.Join(s.deploymentsDir, string(deployType)+".json")
}

// Load reads and validates the deployment config of deployType
func (s *DeploymentConfigStoreAdapter) Load(ctx context.Context, deployType domain.DeploymentType) (*domain.DeploymentConfig, error) {
	path := s.Path(deployType)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment config: %w", err)
	}

	var file deploymentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse deployment config %s: %w", path, err)
	}

	artifacts, err := s.artifacts.LoadAll()
	if err != nil {
		return nil, err
	}

	cfg := &domain.DeploymentConfig{
		Type:      deployType,
		Deployer:  file.Deployer,
		Contracts: make(map[domain.ContractName]*domain.ContractConfig, len(file.Contracts)),
	}
	for key, entry := range file.Contracts {
		name := domain.ContractName(key)
		if !name.IsValid() {
			return nil, fmt.Errorf("%w: %s in %s", domain.ErrUnknownContract, key, path)
		}

		salt := new(big.Int)
		if entry.BestKnownSalt != "" {
			salt, err = domain.ParseSalt(entry.BestKnownSalt)
			if err != nil {
				return nil, fmt.Errorf("invalid bestKnownSalt for %s: %w", name, err)
			}
		}

		contract := &domain.ContractConfig{
			Name:              name,
			Create2Address:    entry.Create2Address,
			NonCreate2Address: entry.NonCreate2Address,
			Args:              entry.Args,
			BestKnownSalt:     salt,
		}
		if artifact, ok := artifacts[name]; ok {
			contract.ABI = artifact.ABI
			contract.Bytecode = artifact.Bytecode
			contract.DeployedBytecode = artifact.DeployedBytecode
		}
		cfg.Contracts[name] = contract
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment config %s: %w", path, err)
	}
	return cfg, nil
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentConfigStore = (*DeploymentConfigStoreAdapter)(nil)
