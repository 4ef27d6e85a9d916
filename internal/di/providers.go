package di

import (
	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/internal/handler/api"
	"github.com/luiskerner/finance-newsletter/internal/render"
	"github.com/luiskerner/finance-newsletter/internal/service/finnhub"
	"github.com/luiskerner/finance-newsletter/internal/service/openai"
	"github.com/luiskerner/finance-newsletter/internal/service/sendgrid"
	"github.com/luiskerner/finance-newsletter/internal/service/sp500"
	"github.com/luiskerner/finance-newsletter/internal/service/yahoo"
	"github.com/luiskerner/finance-newsletter/internal/usecase"
	"github.com/luiskerner/finance-newsletter/pkg/config"
	xhttp "github.com/luiskerner/finance-newsletter/pkg/http"
	"github.com/luiskerner/finance-newsletter/pkg/logger"
	"github.com/luiskerner/finance-newsletter/pkg/metrics"
	"github.com/luiskerner/finance-newsletter/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTextGenerator creates the language-model adapter.
func ProvideTextGenerator(cfg *config.Config) repository.TextGenerator {
	return openai.New(cfg.LLM.APIKey, cfg.LLM.Timeout)
}

// ProvideNewsSource selects the headline feed implementation from config.
func ProvideNewsSource(cfg *config.Config) repository.NewsSource {
	if cfg.News.Source == "finnhub" {
		return finnhub.New(cfg.News.APIKey, 7)
	}
	return yahoo.NewFeed(cfg.News.FeedURL, cfg.News.Region, cfg.News.Lang, cfg.News.Timeout)
}

// ProvidePriceSource creates the price history client.
func ProvidePriceSource(cfg *config.Config) repository.PriceSource {
	return yahoo.NewPriceClient(cfg.Prices.BaseURL, cfg.Prices.Interval, cfg.Prices.Timeout)
}

// ProvideChartRenderer creates the chart renderer.
func ProvideChartRenderer() repository.ChartRenderer {
	return render.NewChart()
}

// ProvideMailer creates the delivery adapter. A missing API key is only an
// error at send time.
func ProvideMailer(cfg *config.Config) repository.Mailer {
	return sendgrid.New(cfg.Email.APIKey, cfg.Email.From, cfg.Email.Subject, cfg.Email.Timeout)
}

// ProvideTickerSource creates the randomize-from-index ticker source.
func ProvideTickerSource(cfg *config.Config) repository.TickerSource {
	return sp500.New(cfg.Tickers.IndexURL, cfg.Tickers.CacheTTL)
}

// ProvideMacroProducer creates the macro overview producer.
func ProvideMacroProducer(gen repository.TextGenerator, cfg *config.Config) *usecase.MacroProducer {
	return usecase.NewMacroProducer(gen, cfg.LLM.MacroModel, cfg.LLM.Temperature)
}

// ProvideNewsCollector creates the news collector.
func ProvideNewsCollector(
	source repository.NewsSource,
	gen repository.TextGenerator,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.NewsCollector {
	return usecase.NewNewsCollector(
		source,
		gen,
		m,
		log,
		cfg.LLM.SummaryModel,
		cfg.LLM.Temperature,
		cfg.News.Limit,
		cfg.News.MaxSummary,
	)
}

// ProvidePriceFetcher creates the price fetcher.
func ProvidePriceFetcher(
	source repository.PriceSource,
	renderer repository.ChartRenderer,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.PriceFetcher {
	return usecase.NewPriceFetcher(source, renderer, m, log, cfg.Prices.LookbackDays)
}

// ProvideBuilder creates the pipeline orchestrator.
func ProvideBuilder(
	macro *usecase.MacroProducer,
	news *usecase.NewsCollector,
	prices *usecase.PriceFetcher,
	mailer repository.Mailer,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.Builder {
	return usecase.NewBuilder(macro, news, prices, mailer, m, log)
}

// ProvideHandler creates the HTTP boundary.
func ProvideHandler(log *logger.Logger, builder *usecase.Builder, tickers repository.TickerSource) xhttp.Handler {
	return api.NewNewsletterHandler(log, builder, tickers)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, log *logger.Logger) *server.App {
	return server.New(cfg, handler, log)
}
