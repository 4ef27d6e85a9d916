package render

import (
	"bytes"
	"fmt"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"

	"github.com/wcharczuk/go-chart/v2"
)

// Chart renders cumulative-return series into a fixed-size PNG line chart:
// one line per ticker, y-axis in percent, x-axis ticks suppressed, legend.
type Chart struct {
	width  int
	height int
}

// NewChart creates a renderer with the newsletter's fixed chart size.
func NewChart() *Chart {
	return &Chart{width: 600, height: 300}
}

// Render draws the chart. returns must be a cumulative-return table; the
// values are plotted as percentages.
func (r *Chart) Render(returns *models.PriceTable) (*models.ChartImage, error) {
	if returns.Empty() {
		return nil, fmt.Errorf("render chart: no series")
	}

	series := make([]chart.Series, 0, len(returns.Tickers))
	for _, tk := range returns.Tickers {
		ys := make([]float64, len(returns.Dates))
		for i, v := range returns.Close[tk] {
			ys[i] = v * 100
		}
		series = append(series, chart.TimeSeries{
			Name:    tk,
			XValues: returns.Dates,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		YAxis: chart.YAxis{
			Name: "% return",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return &models.ChartImage{PNG: buf.Bytes()}, nil
}
