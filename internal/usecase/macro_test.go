package usecase

import (
    "context"
    "errors"
    "strings"
    "testing"
    "time"

    "github.com/luiskerner/finance-newsletter/internal/domain/models"
)

func TestMacroOverviewPromptEmbedsDate(t *testing.T) {
    gen := &fakeGenerator{response: "Macro overview."}
    p := NewMacroProducer(gen, "gpt-4o-mini", 0.3)

    today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
    got, err := p.Overview(context.Background(), today)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if got != "Macro overview." {
        t.Fatalf("unexpected overview: %q", got)
    }

    if len(gen.prompts) != 1 {
        t.Fatalf("expected single generation call, got %d", len(gen.prompts))
    }
    if !strings.Contains(gen.prompts[0], "As of August 31, 2026") {
        t.Fatalf("prompt missing human-readable date: %q", gen.prompts[0])
    }
    if gen.models[0] != "gpt-4o-mini" {
        t.Fatalf("wrong model tier: %q", gen.models[0])
    }
}

func TestMacroOverviewPropagatesGenerationError(t *testing.T) {
    gen := &fakeGenerator{err: &models.GenerationError{Err: errors.New("quota")}}
    p := NewMacroProducer(gen, "gpt-4o-mini", 0.3)

    _, err := p.Overview(context.Background(), time.Now())

    var genErr *models.GenerationError
    if !errors.As(err, &genErr) {
        t.Fatalf("expected GenerationError, got %v", err)
    }
}
