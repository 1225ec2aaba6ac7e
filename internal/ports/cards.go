package ports

import (
	"context"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

// CardFinder looks up one card by (approximate) name in an external card
// database. A miss is reported as domain.ErrCardNotFound.
type CardFinder interface {
	FindNamed(ctx context.Context, name string) (domain.CardSummary, error)
}
