package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
)

// ResolveContractsParams selects the deployment config and address mode
type ResolveContractsParams struct {
	DeployType domain.DeploymentType
	Create2    bool
}

// ResolvedContract is one configured contract and whether it has code
type ResolvedContract struct {
	Name    domain.ContractName
	Address common.Address
	HasCode bool
	// Required is false for contracts whose absence is only a warning
	Required bool
}

// ContractsView is the resolved contract set
type ContractsView struct {
	DeployType domain.DeploymentType
	Create2    bool
	Network    string
	Deployer   common.Address
	Contracts  []ResolvedContract
}

// Missing returns the required contracts without code
func (v *ContractsView) Missing() []ResolvedContract {
	var out []ResolvedContract
	for _, c := range v.Contracts {
		if c.Required && !c.HasCode {
			out = append(out, c)
		}
	}
	return out
}

// ResolveContracts resolves every configured contract at its mode address
type ResolveContracts struct {
	chain   ChainClient
	configs DeploymentConfigStore
	guard   *NetworkGuard
}

// NewResolveContracts creates a new ResolveContracts use case
func NewResolveContracts(chain ChainClient, configs DeploymentConfigStore, guard *NetworkGuard) *ResolveContracts {
	return &ResolveContracts{
		chain:   chain,
		configs: configs,
		guard:   guard,
	}
}

// Run reads the code at every configured address. Missing contracts are
// reported in the view, not as an error.
func (uc *ResolveContracts) Run(ctx context.Context, params ResolveContractsParams) (*ContractsView, error) {
	if err := uc.guard.WaitForNetwork(ctx); err != nil {
		return nil, err
	}
	deployment, err := uc.configs.Load(ctx, params.DeployType)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s deployment config: %w", params.DeployType, err)
	}

	view := &ContractsView{
		DeployType: params.DeployType,
		Create2:    params.Create2,
		Network:    uc.guard.NetworkName(),
		Deployer:   deployment.Deployer,
	}
	for _, name := range domain.AllContracts {
		create2 := params.Create2 && name != domain.ImmutableCreate2Factory
		addr := deployment.AddressOf(name, create2)
		code, err := uc.chain.CodeAt(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get code for %s: %w", name, err)
		}
		view.Contracts = append(view.Contracts, ResolvedContract{
			Name:     name,
			Address:  addr,
			HasCode:  len(code) > 0,
			Required: name != domain.OpenAvatarGen0ExampleMutableCanvasRenderer,
		})
	}
	return view, nil
}
