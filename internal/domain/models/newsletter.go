package models

import (
	"encoding/base64"
	"time"
)

// Regions is the fixed set of regions a newsletter can be labeled with.
var Regions = []string{"USA", "Europe", "Germany", "Asia", "Australia"}

// MaxTickers caps how many symbols one newsletter covers.
const MaxTickers = 3

// NewsArticle is a single headline from a feed, immutable once fetched.
type NewsArticle struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// MatchedArticle is a NewsArticle attributed to the first ticker whose
// symbol appears in its title. Summary is filled in later; when the
// language model fails it holds the raw title.
type MatchedArticle struct {
	Ticker  string `json:"ticker"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary,omitempty"`
}

// ClosePoint is one adjusted daily closing price.
type ClosePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// ChartImage is a rendered PNG line chart.
type ChartImage struct {
	PNG []byte
}

// Base64 returns the image encoded for embedding in a document.
func (c *ChartImage) Base64() string {
	if c == nil || len(c.PNG) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(c.PNG)
}

// Newsletter is the assembled document. Built fresh per request and never
// mutated afterwards.
type Newsletter struct {
	Body  string
	Chart *ChartImage
}

// DeliveryReceipt carries the email service's response metadata.
type DeliveryReceipt struct {
	StatusCode int                 `json:"status_code"`
	Body       string              `json:"body,omitempty"`
	Headers    map[string][]string `json:"-"`
}
