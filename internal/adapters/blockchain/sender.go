package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// txBackend is the part of the RPC client a KeySender needs
type txBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// chainIDSource resolves the chain id transactions are signed for
type chainIDSource interface {
	VerifyChainID(ctx context.Context) (uint64, error)
}

// KeySender signs EIP-1559 transactions with a private key
type KeySender struct {
	backend txBackend
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewKeySender creates a sender for hexKey, with or without 0x prefix
func NewKeySender(backend txBackend, hexKey string, chainID uint64) (*KeySender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &KeySender{
		backend: backend,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).SetUint64(chainID),
	}, nil
}

// Address returns the signing address
func (s *KeySender) Address() common.Address {
	return s.address
}

// SendTransaction fills the pending nonce, signs and broadcasts req
func (s *KeySender) SendTransaction(ctx context.Context, req usecase.TxRequest) (*types.Transaction, error) {
	nonce, err := s.backend.PendingNonceAt(ctx, s.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: req.Gas.MaxPriorityFeePerGas,
		GasFeeCap: req.Gas.MaxFeePerGas,
		Gas:       req.GasLimit,
		To:        req.To,
		Value:     value,
		Data:      req.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	return signed, nil
}

// SenderFactory builds KeySenders for the configured deployer key
type SenderFactory struct {
	backend txBackend
	chain   chainIDSource
	config  *config.RuntimeConfig
}

// NewSenderFactory creates a new SenderFactory
func NewSenderFactory(client *Client, cfg *config.RuntimeConfig) *SenderFactory {
	return &SenderFactory{backend: client, chain: client, config: cfg}
}

// Deployer returns a sender for the configured private key
func (f *SenderFactory) Deployer(ctx context.Context) (usecase.TransactionSender, error) {
	key := f.config.PrivateKey
	if key == "" {
		// Local nodes fund the well-known dev account
		if f.config.IsPublicNetwork() {
			return nil, domain.ErrNoPrivateKey
		}
		key = domain.HardhatDefaultPrivateKey
	}
	return f.FromPrivateKey(ctx, key)
}

// FromPrivateKey returns a sender for hexKey on the connected chain
func (f *SenderFactory) FromPrivateKey(ctx context.Context, hexKey string) (usecase.TransactionSender, error) {
	chainID, err := f.chain.VerifyChainID(ctx)
	if err != nil {
		return nil, err
	}
	return NewKeySender(f.backend, hexKey, chainID)
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.TransactionSender = (*KeySender)(nil)
	_ usecase.SenderFactory     = (*SenderFactory)(nil)
)
