package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	xhttp "github.com/luiskerner/finance-newsletter/pkg/http"
)

// PriceClient implements repository.PriceSource using the Yahoo Finance v8
// chart API, one request per ticker.
type PriceClient struct {
	client   *xhttp.Client
	baseURL  string
	interval string
}

// NewPriceClient creates a new price history client. interval is the bar
// width ("1d", "1wk", ...); empty means daily.
func NewPriceClient(baseURL, interval string, timeout time.Duration) *PriceClient {
	if interval == "" {
		interval = "1d"
	}
	return &PriceClient{
		client: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithUserAgent("Mozilla/5.0"),
		),
		baseURL:  baseURL,
		interval: interval,
	}
}

// chartResponse is the response structure of the chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64         `json:"timestamp"`
			Indicators chartIndicators `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartIndicators struct {
	Quote []struct {
		Close []*float64 `json:"close"`
	} `json:"quote"`
	AdjClose []struct {
		AdjClose []*float64 `json:"adjclose"`
	} `json:"adjclose"`
}

// closeSeries prefers the split/dividend-adjusted series when present.
func (ind chartIndicators) closeSeries() []*float64 {
	if len(ind.AdjClose) > 0 && len(ind.AdjClose[0].AdjClose) > 0 {
		return ind.AdjClose[0].AdjClose
	}
	if len(ind.Quote) > 0 {
		return ind.Quote[0].Close
	}
	return nil
}

// DailyCloses returns adjusted daily closing prices for the lookback
// window, oldest first. Null bars (holidays) are skipped.
func (c *PriceClient) DailyCloses(ctx context.Context, ticker string, days int) ([]models.ClosePoint, error) {
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(ticker)),
		QueryParams: map[string][]string{
			"interval": {c.interval},
			"range":    {rangeFor(days)},
			"events":   {"div,split"},
		},
	}

	var resp chartResponse
	if err := c.client.SendAndParse(ctx, opts, &resp); err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s", ticker, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("chart %s: no data returned", ticker)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.closeSeries()
	if closes == nil {
		return nil, fmt.Errorf("chart %s: no close series", ticker)
	}

	points := make([]models.ClosePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.ClosePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return points, nil
}

func rangeFor(days int) string {
	switch {
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	default:
		return "1y"
	}
}
