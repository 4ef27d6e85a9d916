package yahoo

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1754006400, 1754092800, 1754179200],
      "indicators": {
        "quote": [{"close": [100.0, null, 102.0]}],
        "adjclose": [{"adjclose": [99.5, null, 101.5]}]
      }
    }],
    "error": null
  }
}`

func TestDailyClosesParsesAdjustedSeries(t *testing.T) {
    var gotPath string
    var gotQuery map[string][]string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotPath = r.URL.Path
        gotQuery = r.URL.Query()
        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte(chartFixture))
    }))
    defer srv.Close()

    c := NewPriceClient(srv.URL, "1d", 5*time.Second)
    points, err := c.DailyCloses(context.Background(), "AAPL", 30)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if gotPath != "/v8/finance/chart/AAPL" {
        t.Fatalf("unexpected path %q", gotPath)
    }
    if got := gotQuery["range"]; len(got) != 1 || got[0] != "1mo" {
        t.Fatalf("unexpected range %v", gotQuery["range"])
    }
    if got := gotQuery["interval"]; len(got) != 1 || got[0] != "1d" {
        t.Fatalf("unexpected interval %v", gotQuery["interval"])
    }

    if len(points) != 2 {
        t.Fatalf("null bar must be skipped, got %d points", len(points))
    }
    if points[0].Close != 99.5 || points[1].Close != 101.5 {
        t.Fatalf("expected adjusted closes, got %+v", points)
    }
    if !points[0].Date.Before(points[1].Date) {
        t.Fatalf("points not oldest first: %+v", points)
    }
}

func TestDailyClosesFallsBackToRawCloses(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"chart":{"result":[{"timestamp":[1754006400],"indicators":{"quote":[{"close":[100.0]}]}}],"error":null}}`))
    }))
    defer srv.Close()

    c := NewPriceClient(srv.URL, "1d", 5*time.Second)
    points, err := c.DailyCloses(context.Background(), "MSFT", 30)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(points) != 1 || points[0].Close != 100.0 {
        t.Fatalf("expected raw close fallback, got %+v", points)
    }
}

func TestDailyClosesUpstreamError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
    }))
    defer srv.Close()

    c := NewPriceClient(srv.URL, "1d", 5*time.Second)
    if _, err := c.DailyCloses(context.Background(), "NOPE", 30); err == nil {
        t.Fatalf("expected error for delisted symbol")
    }
}

func TestDailyClosesEmptyResult(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
    }))
    defer srv.Close()

    c := NewPriceClient(srv.URL, "1d", 5*time.Second)
    if _, err := c.DailyCloses(context.Background(), "AAPL", 30); err == nil {
        t.Fatalf("expected error for empty result")
    }
}

func TestDailyClosesUsesConfiguredInterval(t *testing.T) {
    var gotInterval string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotInterval = r.URL.Query().Get("interval")
        w.Write([]byte(chartFixture))
    }))
    defer srv.Close()

    c := NewPriceClient(srv.URL, "1wk", 5*time.Second)
    if _, err := c.DailyCloses(context.Background(), "AAPL", 30); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if gotInterval != "1wk" {
        t.Fatalf("interval = %q, want 1wk", gotInterval)
    }
}

func TestRangeFor(t *testing.T) {
    cases := []struct {
        days int
        want string
    }{
        {7, "1mo"},
        {30, "1mo"},
        {60, "3mo"},
        {180, "6mo"},
        {365, "1y"},
    }
    for _, tc := range cases {
        if got := rangeFor(tc.days); got != tc.want {
            t.Errorf("rangeFor(%d) = %q, want %q", tc.days, got, tc.want)
        }
    }
}
