package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
	"github.com/tysonian801/mtg-chatbot/internal/ports"
)

// AnswerRequest is the application-level input (no HTTP types). Format and
// Style arrive as raw strings; unrecognized values resolve to their defaults.
type AnswerRequest struct {
	Question string
	Format   string
	Style    string
}

// AnswerResponse is the application-level output.
type AnswerResponse struct {
	Answer        string
	Format        domain.FormatContext
	Style         domain.ResponseStyle
	DetectedCards []string
	Model         string
	LatencyMS     int64
}

// RulesService orchestrates one question/answer exchange: candidate
// extraction, optional enrichment, prompt composition and the model call.
// It holds no per-request state, so concurrent Answer calls need no
// coordination.
type RulesService struct {
	llm      ports.Completer
	enricher *Enricher // nil when enrichment is disabled
	model    string
}

func NewRulesService(llm ports.Completer, enricher *Enricher, model string) *RulesService {
	return &RulesService{
		llm:      llm,
		enricher: enricher,
		model:    model,
	}
}

// Answer runs the full pipeline for one question. An empty or whitespace-only
// question is rejected before any external call is made.
func (s *RulesService) Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AnswerResponse{}, domain.ErrEmptyQuestion
	}

	format := domain.ParseFormat(req.Format)
	style := domain.ParseStyle(req.Style)

	cards := domain.ExtractCardNames(question)

	var cardContext string
	if s.enricher != nil && len(cards) > 0 {
		cardContext = s.enricher.Context(ctx, cards)
	}

	prompt := domain.Compose(question, format, style, cardContext)

	start := time.Now()
	text, err := s.llm.Complete(ctx, prompt)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return AnswerResponse{}, fmt.Errorf("complete: %w", err)
	}

	return AnswerResponse{
		Answer:        text,
		Format:        format,
		Style:         style,
		DetectedCards: cards,
		Model:         s.model,
		LatencyMS:     latency,
	}, nil
}
