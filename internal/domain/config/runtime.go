package config

import (
	"math/big"
	"time"

	"github.com/samber/lo"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot    string
	ArtifactsDir   string
	DeploymentsDir string
	CorpusDir      string

	// Context settings
	Network    *Network // nil if not specified
	DeployType string
	Create2    bool

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Transaction settings
	Gas            GasParams
	UploadGasLimit uint64
	PrivateKey     string `json:"-"`

	// Networks that never require a confirmation
	Local LocalNetworks

	// Resolved configurations
	Project *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// GasParams are EIP-1559 fee caps in wei. Nil fields are filled from the node.
type GasParams struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// LocalNetworks is the allow-list of networks treated as local
type LocalNetworks struct {
	Names    []string
	ChainIDs []uint64
}

// DefaultLocalNetworks returns the built-in allow-list
func DefaultLocalNetworks() LocalNetworks {
	return LocalNetworks{
		Names:    []string{"localhost", "hardhat", "alpha", "anvil"},
		ChainIDs: []uint64{1337, 31337},
	}
}

// IsLocal reports whether n is on the allow-list by name or chain id
func (l LocalNetworks) IsLocal(n *Network) bool {
	if n == nil {
		return false
	}
	return lo.Contains(l.Names, n.Name) || lo.Contains(l.ChainIDs, n.ChainID)
}

// IsPublicNetwork reports whether writes to the configured network need confirmation
func (c *RuntimeConfig) IsPublicNetwork() bool {
	return !c.Local.IsLocal(c.Network)
}
