package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/pkg/logger"
)

// Builder sequences the pipeline: macro overview, news collection, price
// fetch, assembly. Delivery is a separate user-gated step and never runs
// before assembly has completed.
type Builder struct {
	macro   *MacroProducer
	news    *NewsCollector
	prices  *PriceFetcher
	mailer  repository.Mailer
	metrics repository.Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewBuilder creates the pipeline orchestrator.
func NewBuilder(
	macro *MacroProducer,
	news *NewsCollector,
	prices *PriceFetcher,
	mailer repository.Mailer,
	metrics repository.Metrics,
	log *logger.Logger,
) *Builder {
	return &Builder{
		macro:   macro,
		news:    news,
		prices:  prices,
		mailer:  mailer,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// BuildResult holds everything one pipeline run produced.
type BuildResult struct {
	Document *models.Newsletter
	Prices   *models.PriceTable
	News     []models.MatchedArticle
}

// Build runs the pipeline once. Apart from the per-article summary
// fallback inside the news collector, any stage failure aborts the run.
func (b *Builder) Build(ctx context.Context, tickers []string, region string) (*BuildResult, error) {
	start := b.now()
	macro, err := b.macro.Overview(ctx, start)
	if err != nil {
		b.metrics.RecordError("generation")
		return nil, err
	}
	b.metrics.RecordStageLatency("macro", time.Since(start).Seconds())

	stage := time.Now()
	matched, err := b.news.Collect(ctx, tickers)
	if err != nil {
		b.metrics.RecordError("feed")
		return nil, err
	}
	b.metrics.RecordStageLatency("news", time.Since(stage).Seconds())

	stage = time.Now()
	table, chart, err := b.prices.Fetch(ctx, tickers)
	if err != nil {
		return nil, err
	}
	b.metrics.RecordStageLatency("prices", time.Since(stage).Seconds())

	doc := Assemble(macro, matched, table, region, chart)
	b.metrics.RecordBuild()
	b.log.Info("newsletter assembled",
		logger.Strings("tickers", tickers),
		logger.Int("matched_articles", len(matched)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return &BuildResult{
		Document: doc,
		Prices:   table,
		News:     matched,
	}, nil
}

// Send delivers an assembled newsletter to one recipient.
func (b *Builder) Send(ctx context.Context, recipient string, doc *models.Newsletter) (*models.DeliveryReceipt, error) {
	receipt, err := b.mailer.Send(ctx, recipient, doc)
	if err != nil {
		var cfgErr *models.ConfigError
		if errors.As(err, &cfgErr) {
			b.metrics.RecordError("config")
		} else {
			b.metrics.RecordError("delivery")
		}
		return nil, err
	}
	b.metrics.RecordSend()
	b.log.Info("newsletter sent",
		logger.String("recipient", recipient),
		logger.Int("status", receipt.StatusCode),
	)
	return receipt, nil
}
