package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"

	"github.com/mmcdole/gofeed"
)

// Feed implements repository.NewsSource on the Yahoo Finance headline RSS
// feed. All tickers go into one batched feed query.
type Feed struct {
	parser  *gofeed.Parser
	feedURL string
	region  string
	lang    string
}

// NewFeed creates a new headline feed source.
func NewFeed(feedURL, region, lang string, timeout time.Duration) *Feed {
	p := gofeed.NewParser()
	p.UserAgent = "Mozilla/5.0"
	if timeout > 0 {
		p.Client = &http.Client{Timeout: timeout}
	}
	return &Feed{
		parser:  p,
		feedURL: feedURL,
		region:  region,
		lang:    lang,
	}
}

func (f *Feed) Name() string { return "yahoo" }

// Fetch returns at most limit entries in feed order. An empty feed is not
// an error.
func (f *Feed) Fetch(ctx context.Context, tickers []string, limit int) ([]models.NewsArticle, error) {
	q := url.Values{}
	q.Set("s", strings.Join(tickers, ","))
	q.Set("region", f.region)
	q.Set("lang", f.lang)

	feed, err := f.parser.ParseURLWithContext(fmt.Sprintf("%s?%s", f.feedURL, q.Encode()), ctx)
	if err != nil {
		return nil, &models.FeedError{Err: err}
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, models.NewsArticle{
			Title: item.Title,
			Link:  item.Link,
		})
		if limit > 0 && len(articles) == limit {
			break
		}
	}
	return articles, nil
}
