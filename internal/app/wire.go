//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/openavatar/openavatar-deploy/internal/adapters"
	"github.com/openavatar/openavatar-deploy/internal/config"
	"github.com/openavatar/openavatar-deploy/internal/logging"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.ProviderSet,

		// App
		NewApp,
	)
	return nil, nil
}
