package usecase

import (
	"context"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/pkg/logger"
)

// PriceFetcher retrieves closing prices for the lookback window, aligns
// them, and renders the performance chart.
type PriceFetcher struct {
	source   repository.PriceSource
	renderer repository.ChartRenderer
	metrics  repository.Metrics
	log      *logger.Logger
	days     int
}

// NewPriceFetcher creates a price fetcher with the fixed lookback window.
func NewPriceFetcher(
	source repository.PriceSource,
	renderer repository.ChartRenderer,
	metrics repository.Metrics,
	log *logger.Logger,
	days int,
) *PriceFetcher {
	if days <= 0 {
		days = 30
	}
	return &PriceFetcher{
		source:   source,
		renderer: renderer,
		metrics:  metrics,
		log:      log,
		days:     days,
	}
}

// Fetch returns the aligned price table (rounded for display) and the
// rendered cumulative-return chart. A provider error for a subset of
// tickers is tolerated: that ticker is omitted. Only when no ticker yields
// a series does Fetch fail, with PriceDataError.
func (f *PriceFetcher) Fetch(ctx context.Context, tickers []string) (*models.PriceTable, *models.ChartImage, error) {
	series := make(map[string][]models.ClosePoint, len(tickers))
	for _, t := range tickers {
		points, err := f.source.DailyCloses(ctx, t, f.days)
		if err != nil {
			f.log.Warn("ticker omitted from price table",
				logger.String("ticker", t),
				logger.Error(err),
			)
			continue
		}
		if len(points) > 0 {
			series[t] = points
		}
	}

	table := models.NewPriceTable(tickers, series)
	if table.Empty() {
		f.metrics.RecordError("price_data")
		return nil, nil, &models.PriceDataError{Msg: "no usable closing prices for any requested ticker"}
	}

	returns := table.CumulativeReturns()
	last := len(returns.Dates) - 1
	for _, t := range returns.Tickers {
		f.metrics.RecordCumulativeReturn(t, returns.Close[t][last])
	}

	img, err := f.renderer.Render(returns)
	if err != nil {
		return nil, nil, err
	}

	return table.Rounded(2), img, nil
}
