package adapters

import (
	"github.com/google/wire"
	"github.com/openavatar/openavatar-deploy/internal/adapters/blockchain"
	"github.com/openavatar/openavatar-deploy/internal/adapters/fs"
	"github.com/openavatar/openavatar-deploy/internal/adapters/interactive"
	"github.com/openavatar/openavatar-deploy/internal/adapters/pricing"
	"github.com/openavatar/openavatar-deploy/internal/adapters/progress"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentConfigStoreAdapter,
	wire.Bind(new(usecase.DeploymentConfigStore), new(*fs.DeploymentConfigStoreAdapter)),

	fs.NewAuditWriterAdapter,
	wire.Bind(new(usecase.AuditWriter), new(*fs.AuditWriterAdapter)),

	fs.NewCorpusLoaderAdapter,
	wire.Bind(new(usecase.CorpusLoader), new(*fs.CorpusLoaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),

	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),

	progress.NewProgressSink,
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.Client)),

	blockchain.NewSenderFactory,
	wire.Bind(new(usecase.SenderFactory), new(*blockchain.SenderFactory)),
)

// PricingSet provides the ETH price feed
var PricingSet = wire.NewSet(
	pricing.NewCoingeckoAdapter,
	wire.Bind(new(usecase.PriceFeed), new(*pricing.CoingeckoAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	BlockchainSet,
	PricingSet,
)
