package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/shopspring/decimal"
)

const (
	networkRetries    = 3
	networkRetryDelay = 3 * time.Second
)

var defaultExplorers = map[uint64]string{
	1:        "https://etherscan.io",
	5:        "https://goerli.etherscan.io",
	11155111: "https://sepolia.etherscan.io",
}

// NetworkGuard checks the node is reachable and gates writes on public networks
type NetworkGuard struct {
	config    *config.RuntimeConfig
	chain     ChainClient
	prices    PriceFeed
	confirmer Confirmer
	log       *slog.Logger

	retries int
	delay   time.Duration
}

// NewNetworkGuard creates a new NetworkGuard
func NewNetworkGuard(cfg *config.RuntimeConfig, chain ChainClient, prices PriceFeed, confirmer Confirmer, log *slog.Logger) *NetworkGuard {
	return &NetworkGuard{
		config:    cfg,
		chain:     chain,
		prices:    prices,
		confirmer: confirmer,
		log:       log,
		retries:   networkRetries,
		delay:     networkRetryDelay,
	}
}

// NetworkName returns the configured network name
func (g *NetworkGuard) NetworkName() string {
	if g.config.Network == nil {
		return ""
	}
	return g.config.Network.Name
}

// IsPublic reports whether writes need a confirmation
func (g *NetworkGuard) IsPublic() bool {
	return g.config.IsPublicNetwork()
}

// WaitForNetwork polls the node until it answers eth_blockNumber
func (g *NetworkGuard) WaitForNetwork(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= g.retries; attempt++ {
		blockNumber, err := g.chain.BlockNumber(ctx)
		if err == nil {
			g.log.Info("Network is up", "network", g.NetworkName(), "block", blockNumber)
			return nil
		}
		lastErr = err
		if attempt == g.retries {
			break
		}
		g.log.Warn(fmt.Sprintf("Network is not up yet. Retrying in %s... (%d/%d)", g.delay, attempt, g.retries), "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.delay):
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrNetworkUnavailable, lastErr)
}

// ConfirmIfPublic blocks on a user confirmation before a write to a public network
func (g *NetworkGuard) ConfirmIfPublic(ctx context.Context, signer common.Address, action string) error {
	if !g.IsPublic() {
		return nil
	}
	if g.config.NonInteractive {
		return fmt.Errorf("%w: %s on %s", domain.ErrConfirmationRequired, action, g.NetworkName())
	}

	details := ConfirmDetails{
		Network: g.NetworkName(),
		Signer:  signer,
		Ticker:  Ticker(g.NetworkName()),
		Action:  action,
	}
	if g.config.Network != nil {
		details.ChainID = g.config.Network.ChainID
	}

	price, err := g.prices.EthUSD(ctx)
	if err != nil {
		g.log.Warn("failed to fetch ETH price", "error", err)
		price = decimal.Zero
	}
	details.EthUSD = price

	if details.Balance, err = g.chain.BalanceAt(ctx, signer, nil); err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	if details.Block, err = g.chain.HeaderByNumber(ctx, nil); err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	return g.confirmer.Confirm(ctx, details)
}

// TxURL returns the block explorer URL of a transaction, or "" when unknown
func (g *NetworkGuard) TxURL(hash common.Hash) string {
	base := ""
	if g.config.Network != nil {
		base = g.config.Network.ExplorerURL
		if base == "" {
			base = defaultExplorers[g.config.Network.ChainID]
		}
	}
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(base, "/"), hash.Hex())
}

// Ticker returns the currency symbol shown for a network's balance
func Ticker(network string) string {
	switch strings.ToLower(network) {
	case "goerli":
		return "GoerliETH"
	case "sepolia":
		return "SepoliaETH"
	default:
		return "ETH"
	}
}
