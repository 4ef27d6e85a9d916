package sp500

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"
)

const indexFixture = `<html><body>
<table id="other"><tr><td>NOPE</td></tr></table>
<table id="constituents">
  <tr><th>Symbol</th><th>Security</th></tr>
  <tr><td><a href="/q?s=MMM">MMM</a></td><td>3M</td></tr>
  <tr><td>AOS</td><td>A. O. Smith</td></tr>
  <tr><td> ABT </td><td>Abbott</td></tr>
</table>
</body></html>`

func TestParseConstituents(t *testing.T) {
    symbols, err := parseConstituents([]byte(indexFixture))
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    want := []string{"MMM", "AOS", "ABT"}
    if len(symbols) != len(want) {
        t.Fatalf("got %v, want %v", symbols, want)
    }
    for i := range want {
        if symbols[i] != want[i] {
            t.Fatalf("got %v, want %v", symbols, want)
        }
    }
}

func TestParseConstituentsMissingTable(t *testing.T) {
    if _, err := parseConstituents([]byte("<html><body><p>nothing</p></body></html>")); err == nil {
        t.Fatalf("expected error without constituents table")
    }
}

func TestRandomSamplesFromIndex(t *testing.T) {
    var hits int
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        hits++
        w.Write([]byte(indexFixture))
    }))
    defer srv.Close()

    s := New(srv.URL, time.Hour)

    picked, err := s.Random(context.Background(), 2)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(picked) != 2 {
        t.Fatalf("expected 2 symbols, got %v", picked)
    }
    if picked[0] == picked[1] {
        t.Fatalf("expected distinct symbols, got %v", picked)
    }
    valid := map[string]bool{"MMM": true, "AOS": true, "ABT": true}
    for _, sym := range picked {
        if !valid[sym] {
            t.Fatalf("symbol %q not from index", sym)
        }
    }

    // second call is served out of cache
    if _, err := s.Random(context.Background(), 3); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if hits != 1 {
        t.Fatalf("expected single index fetch, got %d", hits)
    }
}

func TestRandomClampsToIndexSize(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(indexFixture))
    }))
    defer srv.Close()

    s := New(srv.URL, time.Hour)
    picked, err := s.Random(context.Background(), 10)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(picked) != 3 {
        t.Fatalf("expected all 3 symbols, got %v", picked)
    }
}
