package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
	"github.com/tysonian801/mtg-chatbot/internal/ports"
)

// ContextSeparator joins the formatted summaries of multiple cards.
const ContextSeparator = "\n---\n"

// Enricher turns candidate card names into a formatted card-text block for
// the prompt. Lookups run sequentially with a fixed delay between calls to
// stay polite to the card database; one name's failure never affects the
// others.
type Enricher struct {
	finder ports.CardFinder
	delay  time.Duration
	logger *slog.Logger
}

func NewEnricher(finder ports.CardFinder, delay time.Duration, logger *slog.Logger) *Enricher {
	return &Enricher{
		finder: finder,
		delay:  delay,
		logger: logger,
	}
}

// Context looks up every name and concatenates the summaries that resolved.
// Names that miss or error contribute nothing. A canceled context stops
// further lookups and returns whatever has been collected so far.
func (e *Enricher) Context(ctx context.Context, names []string) string {
	var blocks []string
	for i, name := range names {
		if i > 0 && e.delay > 0 {
			select {
			case <-ctx.Done():
				return strings.Join(blocks, ContextSeparator)
			case <-time.After(e.delay):
			}
		}

		summary, err := e.finder.FindNamed(ctx, name)
		if err != nil {
			e.logger.DebugContext(ctx, "card lookup failed", "name", name, "error", err)
			continue
		}
		blocks = append(blocks, formatSummary(summary))
	}
	return strings.Join(blocks, ContextSeparator)
}

// formatSummary renders one card as labeled lines. Absent fields are simply
// skipped; power/toughness only appears when both halves are present.
func formatSummary(s domain.CardSummary) string {
	lines := []string{"Card: " + s.Name}
	if s.ManaCost != "" {
		lines = append(lines, "Mana Cost: "+s.ManaCost)
	}
	if s.TypeLine != "" {
		lines = append(lines, "Type: "+s.TypeLine)
	}
	if s.OracleText != "" {
		lines = append(lines, "Rules Text: "+s.OracleText)
	}
	if s.Power != "" && s.Toughness != "" {
		lines = append(lines, "Power/Toughness: "+s.Power+"/"+s.Toughness)
	}
	return strings.Join(lines, "\n")
}
