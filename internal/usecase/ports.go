package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openavatar/openavatar-deploy/internal/domain"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/shopspring/decimal"
)

// ChainClient is the subset of the JSON-RPC surface the tool needs
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// TxRequest describes a transaction to sign and broadcast
type TxRequest struct {
	To       *common.Address // nil for contract creation
	Data     []byte
	Value    *big.Int
	GasLimit uint64
	Gas      config.GasParams
}

// TransactionSender signs and broadcasts transactions from one account
type TransactionSender interface {
	Address() common.Address
	SendTransaction(ctx context.Context, req TxRequest) (*types.Transaction, error)
}

// SenderFactory creates senders from the configured key or an explicit one
type SenderFactory interface {
	Deployer(ctx context.Context) (TransactionSender, error)
	FromPrivateKey(ctx context.Context, hexKey string) (TransactionSender, error)
}

// DeploymentConfigStore loads deployments/<type>.json merged with compiled artifacts
type DeploymentConfigStore interface {
	Load(ctx context.Context, deployType domain.DeploymentType) (*domain.DeploymentConfig, error)
}

// AuditWriter persists deployment audit artifacts
type AuditWriter interface {
	WriteCreate2Record(ctx context.Context, name domain.ContractName, record *domain.Create2Record) error
	WriteFixScript(ctx context.Context, mismatches []domain.AddressMismatch) (string, error)
}

// CorpusLoader reads the locally encoded asset corpus
type CorpusLoader interface {
	LoadCorpus(ctx context.Context) (*domain.Corpus, error)
	LoadPatterns(ctx context.Context, pose string) ([]domain.Pattern, error)
}

// PriceFeed quotes the ETH price in USD
type PriceFeed interface {
	EthUSD(ctx context.Context) (decimal.Decimal, error)
}

// ConfirmDetails is what the user sees before a write on a public network
type ConfirmDetails struct {
	Network string
	ChainID uint64
	Signer  common.Address
	Balance *big.Int
	Ticker  string
	EthUSD  decimal.Decimal
	Block   *types.Header
	Action  string
}

// Confirmer asks the user to approve a public network write
type Confirmer interface {
	Confirm(ctx context.Context, details ConfirmDetails) error
}

// ContractSelector picks a contract interactively
type ContractSelector interface {
	SelectContract(ctx context.Context, names []domain.ContractName, prompt string) (domain.ContractName, error)
}

// CostObserver is notified once per mined transaction
type CostObserver interface {
	OnReceipt(ctx context.Context, receipt *types.Receipt)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
