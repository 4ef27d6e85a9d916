package usecase

import (
	"fmt"
	"strings"

	"github.com/luiskerner/finance-newsletter/internal/domain/models"
)

// NoNewsPlaceholder is rendered when no headline matched any ticker.
const NoNewsPlaceholder = "No relevant news today."

// Assemble merges the three sections into one document. Pure function of
// its inputs: identical inputs yield byte-identical output.
func Assemble(macro string, matched []models.MatchedArticle, table *models.PriceTable, region string, chart *models.ChartImage) *models.Newsletter {
	var b strings.Builder

	b.WriteString("## Macroeconomic Overview\n")
	b.WriteString(macro)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("## Latest 30-day Close (last row) – %s\n", region))
	b.WriteString(priceTableMarkdown(table))
	b.WriteString("\n")

	b.WriteString("## News Highlights\n")
	b.WriteString(newsBlock(matched))

	return &models.Newsletter{
		Body:  b.String(),
		Chart: chart,
	}
}

// priceTableMarkdown renders the most recent row transposed: one line per
// ticker.
func priceTableMarkdown(table *models.PriceTable) string {
	if table.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("| Ticker | Close |\n")
	b.WriteString("|---|---|\n")
	last := table.LastClose()
	for _, t := range table.Tickers {
		b.WriteString(fmt.Sprintf("| %s | %.2f |\n", t, last[t]))
	}
	return b.String()
}

func newsBlock(matched []models.MatchedArticle) string {
	if len(matched) == 0 {
		return NoNewsPlaceholder
	}

	var b strings.Builder
	for _, a := range matched {
		b.WriteString(fmt.Sprintf("- **%s** %s\n  <%s>\n", a.Ticker, a.Summary, a.Link))
	}
	return b.String()
}
