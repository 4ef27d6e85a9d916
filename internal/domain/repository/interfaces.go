package repository

import (
	"context"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
)

// TextGenerator wraps a single request/response call to a language-model
// completion service. Implementations return *models.GenerationError on
// failure and never retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, model string, temperature float64) (string, error)
}

// NewsSource retrieves a headline feed scoped to the given tickers in one
// batched query, preserving feed order.
type NewsSource interface {
	Fetch(ctx context.Context, tickers []string, limit int) ([]models.NewsArticle, error)
	Name() string
}

// PriceSource retrieves adjusted daily closing prices for one ticker over
// the lookback window, oldest first.
type PriceSource interface {
	DailyCloses(ctx context.Context, ticker string, days int) ([]models.ClosePoint, error)
}

// ChartRenderer renders a cumulative-return series into a raster image.
type ChartRenderer interface {
	Render(returns *models.PriceTable) (*models.ChartImage, error)
}

// Mailer submits an assembled newsletter to a transactional email service.
type Mailer interface {
	Send(ctx context.Context, recipient string, doc *models.Newsletter) (*models.DeliveryReceipt, error)
}

// TickerSource supplies symbols from a reference index for the randomize
// action. Purely a front-end convenience.
type TickerSource interface {
	Random(ctx context.Context, n int) ([]string, error)
}

// Metrics abstracts metric recording.
type Metrics interface {
	RecordBuild()
	RecordSend()
	RecordError(kind string)
	RecordCumulativeReturn(ticker string, value float64)
	RecordStageLatency(stage string, seconds float64)
}
