package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/luiskerner/finance-newsletter/internal/domain/repository"
	"github.com/luiskerner/finance-newsletter/pkg/util"
)

const macroPromptFormat = "As of %s, in 200 words or less summarise last week's " +
	"key global macroeconomic and geopolitical trends an investor should know."

// MacroProducer builds the macro overview section with the higher-quality
// model tier.
type MacroProducer struct {
	gen         repository.TextGenerator
	model       string
	temperature float64
}

// NewMacroProducer creates a macro overview producer.
func NewMacroProducer(gen repository.TextGenerator, model string, temperature float64) *MacroProducer {
	return &MacroProducer{
		gen:         gen,
		model:       model,
		temperature: temperature,
	}
}

// Overview generates the macro summary for the given date. GenerationError
// propagates unchanged.
func (p *MacroProducer) Overview(ctx context.Context, today time.Time) (string, error) {
	prompt := fmt.Sprintf(macroPromptFormat, util.LongDate(today))
	return p.gen.Generate(ctx, prompt, p.model, p.temperature)
}
