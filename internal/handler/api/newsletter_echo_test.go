package api

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/luiskerner/finance-newsletter/internal/domain/models"
    "github.com/luiskerner/finance-newsletter/internal/usecase"
    "github.com/luiskerner/finance-newsletter/pkg/logger"
)

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, prompt, _ string, _ float64) (string, error) {
    if strings.Contains(prompt, "macroeconomic") {
        return "Macro overview.", nil
    }
    return "Article summary.", nil
}

type stubNewsSource struct {
    articles []models.NewsArticle
}

func (s stubNewsSource) Fetch(context.Context, []string, int) ([]models.NewsArticle, error) {
    return s.articles, nil
}

func (stubNewsSource) Name() string { return "stub" }

type stubPriceSource struct{}

func (stubPriceSource) DailyCloses(_ context.Context, ticker string, _ int) ([]models.ClosePoint, error) {
    return []models.ClosePoint{
        {Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Close: 100},
        {Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Close: 105},
    }, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(*models.PriceTable) (*models.ChartImage, error) {
    return &models.ChartImage{PNG: []byte("png")}, nil
}

type stubMailer struct {
    err error
}

func (s stubMailer) Send(context.Context, string, *models.Newsletter) (*models.DeliveryReceipt, error) {
    if s.err != nil {
        return nil, s.err
    }
    return &models.DeliveryReceipt{StatusCode: 202}, nil
}

type stubTickerSource struct {
    symbols []string
    err     error
}

func (s stubTickerSource) Random(_ context.Context, n int) ([]string, error) {
    if s.err != nil {
        return nil, s.err
    }
    if n > len(s.symbols) {
        n = len(s.symbols)
    }
    return s.symbols[:n], nil
}

type stubMetrics struct{}

func (stubMetrics) RecordBuild()                           {}
func (stubMetrics) RecordSend()                            {}
func (stubMetrics) RecordError(string)                     {}
func (stubMetrics) RecordCumulativeReturn(string, float64) {}
func (stubMetrics) RecordStageLatency(string, float64)     {}

func newTestHandler(t *testing.T, mailer stubMailer, tickers stubTickerSource) *NewsletterHandler {
    t.Helper()
    log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
    if err != nil {
        t.Fatalf("logger: %v", err)
    }

    gen := stubGenerator{}
    macro := usecase.NewMacroProducer(gen, "gpt-4o-mini", 0.3)
    news := usecase.NewNewsCollector(
        stubNewsSource{articles: []models.NewsArticle{
            {Title: "AAPL hits record", Link: "https://example.com/1"},
        }},
        gen, stubMetrics{}, log, "gpt-3.5-turbo", 0.3, 20, 6,
    )
    prices := usecase.NewPriceFetcher(stubPriceSource{}, stubRenderer{}, stubMetrics{}, log, 30)
    builder := usecase.NewBuilder(macro, news, prices, mailer, stubMetrics{}, log)

    return NewNewsletterHandler(log, builder, tickers)
}

func doRequest(t *testing.T, h *NewsletterHandler, method, target, body string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    h.RegisterRoutes(e)

    req := httptest.NewRequest(method, target, strings.NewReader(body))
    if body != "" {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (int, json.RawMessage) {
    t.Helper()
    var env struct {
        Status int             `json:"status"`
        Data   json.RawMessage `json:"data"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
        t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
    }
    return env.Status, env.Data
}

func TestPreviewReturnsAssembledDocument(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/preview",
        `{"tickers":["aapl"],"region":"USA"}`)

    if rec.Code != http.StatusOK {
        t.Fatalf("http status %d", rec.Code)
    }
    status, data := decodeEnvelope(t, rec)
    if status != http.StatusOK {
        t.Fatalf("envelope status %d: %s", status, rec.Body.String())
    }

    var resp models.BuildResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        t.Fatalf("decode data: %v", err)
    }
    if !strings.Contains(resp.Document, "## Macroeconomic Overview") {
        t.Fatalf("document missing macro section:\n%s", resp.Document)
    }
    if len(resp.LatestClose) != 1 || resp.LatestClose[0].Ticker != "AAPL" {
        t.Fatalf("unexpected close rows: %+v", resp.LatestClose)
    }
    if resp.ChartPNG == "" {
        t.Fatalf("chart missing from response")
    }
}

func TestPreviewRejectsMissingTickers(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/preview", `{"region":"USA"}`)

    status, _ := decodeEnvelope(t, rec)
    if status != http.StatusBadRequest {
        t.Fatalf("expected 400 envelope, got %d: %s", status, rec.Body.String())
    }
}

func TestPreviewRejectsBlankTickers(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/preview",
        `{"tickers":["   "],"region":"USA"}`)

    status, _ := decodeEnvelope(t, rec)
    if status != http.StatusBadRequest {
        t.Fatalf("expected 400 envelope, got %d: %s", status, rec.Body.String())
    }
}

func TestSendWithoutCredentialReturnsPrecondition(t *testing.T) {
    h := newTestHandler(t,
        stubMailer{err: &models.ConfigError{Msg: "SENDGRID_API_KEY not set"}},
        stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/send",
        `{"email":"reader@example.com","tickers":["AAPL"],"region":"USA"}`)

    status, _ := decodeEnvelope(t, rec)
    if status != http.StatusPreconditionFailed {
        t.Fatalf("expected 412 envelope, got %d: %s", status, rec.Body.String())
    }
}

func TestSendDeliversToRecipient(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/send",
        `{"email":"reader@example.com","tickers":["AAPL"],"region":"Europe"}`)

    status, data := decodeEnvelope(t, rec)
    if status != http.StatusOK {
        t.Fatalf("envelope status %d: %s", status, rec.Body.String())
    }
    var resp models.SendResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        t.Fatalf("decode data: %v", err)
    }
    if resp.Recipient != "reader@example.com" || resp.StatusCode != 202 {
        t.Fatalf("unexpected send response: %+v", resp)
    }
}

func TestSendRejectsInvalidEmail(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodPost, "/api/newsletter/send",
        `{"email":"not-an-email","tickers":["AAPL"]}`)

    status, _ := decodeEnvelope(t, rec)
    if status != http.StatusBadRequest {
        t.Fatalf("expected 400 envelope, got %d: %s", status, rec.Body.String())
    }
}

func TestRandomTickersClampsCount(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{symbols: []string{"MMM", "AOS", "ABT", "ACN"}})

    rec := doRequest(t, h, http.MethodGet, "/api/tickers/random?n=9", "")

    status, data := decodeEnvelope(t, rec)
    if status != http.StatusOK {
        t.Fatalf("envelope status %d", status)
    }
    var resp models.RandomTickersResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        t.Fatalf("decode data: %v", err)
    }
    if len(resp.Tickers) != models.MaxTickers {
        t.Fatalf("expected %d tickers, got %v", models.MaxTickers, resp.Tickers)
    }
}

func TestRandomTickersUpstreamFailure(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{err: errors.New("index down")})

    rec := doRequest(t, h, http.MethodGet, "/api/tickers/random", "")

    status, _ := decodeEnvelope(t, rec)
    if status != http.StatusBadGateway {
        t.Fatalf("expected 502 envelope, got %d: %s", status, rec.Body.String())
    }
}

func TestRegionsListsFixedChoices(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodGet, "/api/regions", "")

    status, data := decodeEnvelope(t, rec)
    if status != http.StatusOK {
        t.Fatalf("envelope status %d", status)
    }
    var resp models.RegionsResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        t.Fatalf("decode data: %v", err)
    }
    if len(resp.Regions) != 5 || resp.Regions[0] != "USA" {
        t.Fatalf("unexpected regions: %v", resp.Regions)
    }
}

func TestHealth(t *testing.T) {
    h := newTestHandler(t, stubMailer{}, stubTickerSource{})

    rec := doRequest(t, h, http.MethodGet, "/health", "")
    if rec.Code != http.StatusOK {
        t.Fatalf("http status %d", rec.Code)
    }
}
