package app

import (
	"log/slog"

	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Guard *usecase.NetworkGuard

	// Use cases
	DeployContracts  *usecase.DeployContracts
	UploadAssets     *usecase.UploadAssets
	SearchSalt       *usecase.SearchSalt
	ConfigureMint    *usecase.ConfigureMint
	ResolveContracts *usecase.ResolveContracts
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	guard *usecase.NetworkGuard,
	deployContracts *usecase.DeployContracts,
	uploadAssets *usecase.UploadAssets,
	searchSalt *usecase.SearchSalt,
	configureMint *usecase.ConfigureMint,
	resolveContracts *usecase.ResolveContracts,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Guard:            guard,
		DeployContracts:  deployContracts,
		UploadAssets:     uploadAssets,
		SearchSalt:       searchSalt,
		ConfigureMint:    configureMint,
		ResolveContracts: resolveContracts,
	}, nil
}
