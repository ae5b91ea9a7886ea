package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// Client implements ChainClient over a JSON-RPC connection
type Client struct {
	*ethclient.Client
	chainID uint64
}

// NewClient dials the configured network. HTTP endpoints connect lazily, so
// an unreachable node surfaces on the first call.
func NewClient(cfg *config.RuntimeConfig) (*Client, error) {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for network")
	}
	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return &Client{Client: client, chainID: cfg.Network.ChainID}, nil
}

// VerifyChainID checks the node's chain id against the configured one. A
// configured chain id of 0 is replaced by the node's.
func (c *Client) VerifyChainID(ctx context.Context) (uint64, error) {
	networkChainID, err := c.Client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.chainID == 0 {
		c.chainID = networkChainID.Uint64()
	} else if networkChainID.Uint64() != c.chainID {
		return 0, fmt.Errorf("chain ID mismatch: expected %d, got %d", c.chainID, networkChainID.Uint64())
	}
	return c.chainID, nil
}

// WaitMined blocks until tx is included and returns its receipt
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, c.Client, tx)
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*Client)(nil)
