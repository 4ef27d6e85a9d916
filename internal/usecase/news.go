package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/pkg/logger"
	"github.com/luiskerner/finance-newsletter/pkg/util"
)

const summaryPromptFormat = "Summarise the following headline & link in 2-3 sentences for an investor.\nTITLE: %s\nLINK: %s"

// NewsCollector fetches the headline feed, attributes headlines to
// tickers, and summarizes the matches.
type NewsCollector struct {
	source       repository.NewsSource
	gen          repository.TextGenerator
	metrics      repository.Metrics
	log          *logger.Logger
	model        string
	temperature  float64
	fetchLimit   int
	maxSummaries int
}

// NewNewsCollector creates a news collector. model is the cheaper summary
// tier.
func NewNewsCollector(
	source repository.NewsSource,
	gen repository.TextGenerator,
	metrics repository.Metrics,
	log *logger.Logger,
	model string,
	temperature float64,
	fetchLimit int,
	maxSummaries int,
) *NewsCollector {
	if fetchLimit <= 0 {
		fetchLimit = 20
	}
	if maxSummaries <= 0 {
		maxSummaries = 6
	}
	return &NewsCollector{
		source:       source,
		gen:          gen,
		metrics:      metrics,
		log:          log,
		model:        model,
		temperature:  temperature,
		fetchLimit:   fetchLimit,
		maxSummaries: maxSummaries,
	}
}

// Fetch retrieves the batched headline feed in feed order.
func (c *NewsCollector) Fetch(ctx context.Context, tickers []string) ([]models.NewsArticle, error) {
	return c.source.Fetch(ctx, tickers, c.fetchLimit)
}

// FilterByTicker attributes each article to the first ticker (in input
// order) whose upper-cased symbol occurs in the upper-cased title.
// Articles matching no ticker are dropped; order is preserved and no
// article is emitted twice.
func FilterByTicker(articles []models.NewsArticle, tickers []string) []models.MatchedArticle {
	upper := make([]string, len(tickers))
	for i, t := range tickers {
		upper[i] = strings.ToUpper(t)
	}

	var matches []models.MatchedArticle
	for _, a := range articles {
		for _, t := range upper {
			if util.ContainsFold(a.Title, t) {
				matches = append(matches, models.MatchedArticle{
					Ticker: t,
					Title:  a.Title,
					Link:   a.Link,
				})
				break
			}
		}
	}
	return matches
}

// Summarize asks the model for a 2-3 sentence investor summary of one
// matched article.
func (c *NewsCollector) Summarize(ctx context.Context, a models.MatchedArticle) (string, error) {
	prompt := fmt.Sprintf(summaryPromptFormat, a.Title, a.Link)
	return c.gen.Generate(ctx, prompt, c.model, c.temperature)
}

// Collect runs fetch, filter, and per-article summarization. A failed
// summary degrades to the raw title for that article only; it never fails
// the pipeline.
func (c *NewsCollector) Collect(ctx context.Context, tickers []string) ([]models.MatchedArticle, error) {
	articles, err := c.Fetch(ctx, tickers)
	if err != nil {
		return nil, err
	}

	matched := FilterByTicker(articles, tickers)
	if len(matched) > c.maxSummaries {
		matched = matched[:c.maxSummaries]
	}

	for i := range matched {
		summary, err := c.Summarize(ctx, matched[i])
		if err != nil {
			c.metrics.RecordError("generation")
			c.log.Warn("article summary failed, using raw title",
				logger.String("ticker", matched[i].Ticker),
				logger.Error(err),
			)
			summary = matched[i].Title
		}
		matched[i].Summary = summary
	}
	return matched, nil
}
