package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/samber/lo"
)

// RPCEnvVarName is the fallback variable holding a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, base-goerli -> BASE_GOERLI_RPC_URL
func RPCEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ResolveNetwork looks a network up in the project file, then in the
// environment. A network found only in the environment has chain id 0 and
// takes the node's chain id on connect.
func ResolveNetwork(project *config.ProjectConfig, name string) (*config.Network, error) {
	if nc, ok := project.Networks[name]; ok {
		if nc.RPCURL == "" {
			return nil, fmt.Errorf("network '%s' has no rpc_url (is its environment variable set?)", name)
		}
		return &config.Network{
			Name:        name,
			ChainID:     nc.ChainID,
			RPCURL:      nc.RPCURL,
			ExplorerURL: nc.ExplorerURL,
		}, nil
	}

	if rpcURL := os.Getenv(RPCEnvVarName(name)); rpcURL != "" {
		return &config.Network{Name: name, RPCURL: rpcURL}, nil
	}

	known := lo.Keys(project.Networks)
	sort.Strings(known)
	return nil, fmt.Errorf("network '%s' not found in %s [networks] (available: %s) and %s is not set",
		name, ProjectFileName, strings.Join(known, ", "), RPCEnvVarName(name))
}

// localNetworks returns the project allow-list, or the built-in one when unset
func localNetworks(project *config.ProjectConfig) config.LocalNetworks {
	local := config.DefaultLocalNetworks()
	if len(project.Local.Networks) > 0 {
		local.Names = project.Local.Networks
	}
	if len(project.Local.ChainIDs) > 0 {
		local.ChainIDs = project.Local.ChainIDs
	}
	return local
}
