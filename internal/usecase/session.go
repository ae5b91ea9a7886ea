package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
)

// Environment bundles the collaborators shared by every chain-writing use case
type Environment struct {
	Config  *config.RuntimeConfig
	Chain   ChainClient
	Senders SenderFactory
	Configs DeploymentConfigStore
	Guard   *NetworkGuard
	Sink    ProgressSink
	Log     *slog.Logger
}

// NewEnvironment creates a new Environment
func NewEnvironment(
	cfg *config.RuntimeConfig,
	chain ChainClient,
	senders SenderFactory,
	configs DeploymentConfigStore,
	guard *NetworkGuard,
	sink ProgressSink,
	log *slog.Logger,
) *Environment {
	return &Environment{
		Config:  cfg,
		Chain:   chain,
		Senders: senders,
		Configs: configs,
		Guard:   guard,
		Sink:    sink,
		Log:     log,
	}
}

// Session is one run against the chain: the deployment config, the signer
// and a transactor that tracks what the run spends.
type Session struct {
	env           *Environment
	Deployment    *domain.DeploymentConfig
	Signer        TransactionSender
	Gas           config.GasParams
	Tx            *Transactor
	Costs         *GasSpentAccumulator
	BalanceBefore *big.Int
}

// Open waits for the network, loads the deployment config and checks the signer
func (e *Environment) Open(ctx context.Context, deployType domain.DeploymentType) (*Session, error) {
	if err := e.Guard.WaitForNetwork(ctx); err != nil {
		return nil, err
	}

	deployment, err := e.Configs.Load(ctx, deployType)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s deployment config: %w", deployType, err)
	}

	signer, err := e.Senders.Deployer(ctx)
	if err != nil {
		return nil, err
	}
	if signer.Address() != deployment.Deployer {
		return nil, &domain.DeployerMismatchError{Signer: signer.Address(), Expected: deployment.Deployer}
	}

	gas, err := ResolveGasParams(ctx, e.Chain, e.Config.Gas)
	if err != nil {
		return nil, err
	}
	e.Log.Info("Using gas params",
		"maxFeePerGas", domain.FormatGwei(gas.MaxFeePerGas)+" gwei",
		"maxPriorityFeePerGas", domain.FormatGwei(gas.MaxPriorityFeePerGas)+" gwei",
	)

	balance, err := e.Chain.BalanceAt(ctx, signer.Address(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	e.Log.Info("Signer", "address", signer.Address().Hex(), "balance", domain.FormatEther(balance)+" "+Ticker(e.Guard.NetworkName()))

	costs := NewGasSpentAccumulator()
	return &Session{
		env:           e,
		Deployment:    deployment,
		Signer:        signer,
		Gas:           gas,
		Tx:            NewTransactor(e.Chain, signer, e.Guard, gas, e.Sink, e.Log, costs),
		Costs:         costs,
		BalanceBefore: balance,
	}, nil
}

// Contract binds name at its configured address for the mode
func (s *Session) Contract(name domain.ContractName, create2 bool) *boundContract {
	return newBoundContract(name, s.Deployment.AddressOf(name, create2), s.env.Chain)
}

// RequireOwner fails unless the signer owns c
func (s *Session) RequireOwner(ctx context.Context, c *boundContract) error {
	owner, err := c.callAddress(ctx, "owner")
	if err != nil {
		return err
	}
	if owner != s.Signer.Address() {
		return fmt.Errorf("%w: %s owner is %s but signer is %s", domain.ErrNotOwner, c.name, owner.Hex(), s.Signer.Address().Hex())
	}
	return nil
}

// SessionTotals summarises what a session spent
type SessionTotals struct {
	Transactions  int
	GasUsed       uint64
	Spent         *big.Int
	BalanceBefore *big.Int
	BalanceAfter  *big.Int
}

// Close reads the final balance and logs the totals
func (s *Session) Close(ctx context.Context) (*SessionTotals, error) {
	after, err := s.env.Chain.BalanceAt(ctx, s.Signer.Address(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	totals := &SessionTotals{
		Transactions:  s.Costs.Transactions(),
		GasUsed:       s.Costs.GasUsed(),
		Spent:         s.Costs.Spent(),
		BalanceBefore: s.BalanceBefore,
		BalanceAfter:  after,
	}
	s.env.Log.Info("Total gas used", "gas", domain.FmtCommas(totals.GasUsed), "transactions", totals.Transactions)
	s.env.Log.Info("Total ETH spent", "eth", domain.FormatEther(totals.Spent))
	return totals, nil
}

// verifyDeployed checks that every contract other than the factory and the
// owner proxy has code at its configured address. A missing example
// renderer is only a warning.
func verifyDeployed(ctx context.Context, chain ChainClient, deployment *domain.DeploymentConfig, create2 bool, log *slog.Logger) (map[domain.ContractName]common.Address, error) {
	out := make(map[domain.ContractName]common.Address, len(domain.AllContracts))
	for _, name := range domain.AllContracts {
		addr := deployment.AddressOf(name, create2)
		out[name] = addr
		if name == domain.ImmutableCreate2Factory || name == domain.OwnerProxy {
			continue
		}
		code, err := chain.CodeAt(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get code for %s: %w", name, err)
		}
		if len(code) > 0 {
			continue
		}
		if name == domain.OpenAvatarGen0ExampleMutableCanvasRenderer {
			log.Warn("Contract is not deployed", "contract", name, "address", addr.Hex())
			continue
		}
		return nil, fmt.Errorf("%w: %s is not deployed at %s", domain.ErrContractNotDeployed, name, addr.Hex())
	}
	return out, nil
}
