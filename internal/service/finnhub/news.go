package finnhub

import (
	"context"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	"github.com/luiskerner/finance-newsletter/pkg/util"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// NewsClient implements repository.NewsSource on the Finnhub company-news
// API. Finnhub has no batched query, so tickers are fetched one by one and
// merged in request order.
type NewsClient struct {
	api          *finnhub.DefaultApiService
	lookbackDays int
}

// New creates a new Finnhub news source.
func New(apiKey string, lookbackDays int) *NewsClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	return &NewsClient{
		api:          finnhub.NewAPIClient(cfg).DefaultApi,
		lookbackDays: lookbackDays,
	}
}

func (c *NewsClient) Name() string { return "finnhub" }

// Fetch returns at most limit headlines across the given tickers.
func (c *NewsClient) Fetch(ctx context.Context, tickers []string, limit int) ([]models.NewsArticle, error) {
	now := time.Now()
	from := util.Day(now.AddDate(0, 0, -c.lookbackDays))
	to := util.Day(now)

	var articles []models.NewsArticle
	for _, t := range tickers {
		res, _, err := c.api.CompanyNews(ctx).Symbol(t).From(from).To(to).Execute()
		if err != nil {
			return nil, &models.FeedError{Err: err}
		}
		for _, n := range res {
			if n.Headline == nil || n.Url == nil {
				continue
			}
			articles = append(articles, models.NewsArticle{
				Title: *n.Headline,
				Link:  *n.Url,
			})
			if limit > 0 && len(articles) == limit {
				return articles, nil
			}
		}
	}
	return articles, nil
}
