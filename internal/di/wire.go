//go:build wireinject
// +build wireinject

package di

import (
	"github.com/luiskerner/finance-newsletter/pkg/config"
	"github.com/luiskerner/finance-newsletter/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,

		// External collaborators
		ProvideTextGenerator,
		ProvideNewsSource,
		ProvidePriceSource,
		ProvideChartRenderer,
		ProvideMailer,
		ProvideTickerSource,

		// Use cases
		ProvideMacroProducer,
		ProvideNewsCollector,
		ProvidePriceFetcher,
		ProvideBuilder,

		// HTTP boundary and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
