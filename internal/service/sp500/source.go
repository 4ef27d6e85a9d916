package sp500

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/service/cache"
	xhttp "github.com/luiskerner/finance-newsletter/pkg/http"

	"golang.org/x/net/html"
)

const cacheKey = "sp500:constituents"

// Source implements repository.TickerSource by scraping the S&P 500
// constituents table from the reference index page. The constituent list
// changes rarely, so it is cached in process.
type Source struct {
	client *xhttp.Client
	url    string
	ttl    time.Duration
	cache  *cache.TTLCache[[]string]
}

// New creates a new randomized ticker source.
func New(indexURL string, ttl time.Duration) *Source {
	return &Source{
		client: xhttp.NewClient(
			xhttp.WithTimeout(30*time.Second),
			xhttp.WithUserAgent("Mozilla/5.0"),
		),
		url:   indexURL,
		ttl:   ttl,
		cache: cache.NewTTLCache[[]string](),
	}
}

// Random returns n distinct symbols sampled from the index.
func (s *Source) Random(ctx context.Context, n int) ([]string, error) {
	symbols, err := s.constituents(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(symbols) {
		n = len(symbols)
	}

	picked := make([]string, len(symbols))
	copy(picked, symbols)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n], nil
}

func (s *Source) constituents(ctx context.Context) ([]string, error) {
	if symbols, ok := s.cache.Get(cacheKey); ok {
		return symbols, nil
	}

	var body []byte
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.url,
	}
	if err := s.client.SendAndParse(ctx, opts, &body); err != nil {
		return nil, fmt.Errorf("fetch index page: %w", err)
	}

	symbols, err := parseConstituents(body)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, symbols, s.ttl)
	return symbols, nil
}

// parseConstituents extracts the first cell of every row of the
// constituents table.
func parseConstituents(page []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	table := findTable(doc, "constituents")
	if table == nil {
		return nil, fmt.Errorf("constituents table not found")
	}

	var symbols []string
	for row := range descendants(table, "tr") {
		cell := firstChild(row, "td")
		if cell == nil {
			continue // header row
		}
		if sym := strings.TrimSpace(text(cell)); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("constituents table is empty")
	}
	return symbols, nil
}

func findTable(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTable(c, id); found != nil {
			return found
		}
	}
	return nil
}

func descendants(n *html.Node, tag string) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(node *html.Node) bool {
			if node.Type == html.ElementNode && node.Data == tag {
				return yield(node)
			}
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

func firstChild(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
