package ports

import (
	"context"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

// Completer sends one composed prompt to the language model and returns the
// single text completion. Implementations classify failures into the domain
// error sentinels before returning them.
type Completer interface {
	Complete(ctx context.Context, prompt domain.ComposedPrompt) (string, error)
}
