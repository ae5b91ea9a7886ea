package usecase

import "github.com/google/wire"

// ProviderSet provides every use case and the environment they share
var ProviderSet = wire.NewSet(
	NewNetworkGuard,
	NewEnvironment,
	NewSaltSearcher,
	NewDeployContracts,
	NewUploadAssets,
	NewSearchSalt,
	NewConfigureMint,
	NewResolveContracts,
)
