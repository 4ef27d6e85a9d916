package usecase

import (
    "context"
    "fmt"
    "testing"

    "github.com/luiskerner/finance-newsletter/internal/domain/models"
    "github.com/luiskerner/finance-newsletter/pkg/logger"
)

type fakeGenerator struct {
    response string
    err      error
    prompts  []string
    models   []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt, model string, _ float64) (string, error) {
    f.prompts = append(f.prompts, prompt)
    f.models = append(f.models, model)
    if f.err != nil {
        return "", f.err
    }
    if f.response != "" {
        return f.response, nil
    }
    return fmt.Sprintf("summary #%d", len(f.prompts)), nil
}

type fakeNewsSource struct {
    articles []models.NewsArticle
    err      error
}

func (f *fakeNewsSource) Fetch(_ context.Context, _ []string, limit int) ([]models.NewsArticle, error) {
    if f.err != nil {
        return nil, f.err
    }
    if limit > 0 && len(f.articles) > limit {
        return f.articles[:limit], nil
    }
    return f.articles, nil
}

func (f *fakeNewsSource) Name() string { return "fake" }

type fakePriceSource struct {
    series map[string][]models.ClosePoint
    errs   map[string]error
}

func (f *fakePriceSource) DailyCloses(_ context.Context, ticker string, _ int) ([]models.ClosePoint, error) {
    if err, ok := f.errs[ticker]; ok {
        return nil, err
    }
    return f.series[ticker], nil
}

type fakeRenderer struct {
    err      error
    rendered *models.PriceTable
}

func (f *fakeRenderer) Render(returns *models.PriceTable) (*models.ChartImage, error) {
    if f.err != nil {
        return nil, f.err
    }
    f.rendered = returns
    return &models.ChartImage{PNG: []byte("png")}, nil
}

type fakeMailer struct {
    err       error
    recipient string
    doc       *models.Newsletter
}

func (f *fakeMailer) Send(_ context.Context, recipient string, doc *models.Newsletter) (*models.DeliveryReceipt, error) {
    if f.err != nil {
        return nil, f.err
    }
    f.recipient = recipient
    f.doc = doc
    return &models.DeliveryReceipt{StatusCode: 202}, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordBuild()                                  {}
func (nopMetrics) RecordSend()                                   {}
func (nopMetrics) RecordError(string)                            {}
func (nopMetrics) RecordCumulativeReturn(string, float64)        {}
func (nopMetrics) RecordStageLatency(string, float64)            {}

func newTestLogger(t *testing.T) *logger.Logger {
    t.Helper()
    l, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
    if err != nil {
        t.Fatalf("logger: %v", err)
    }
    return l
}
