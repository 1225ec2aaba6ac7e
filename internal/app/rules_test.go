package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonian801/mtg-chatbot/internal/app"
	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

// mockCompleter records the prompts it receives and returns a canned result.
type mockCompleter struct {
	text    string
	err     error
	prompts []domain.ComposedPrompt
}

func (m *mockCompleter) Complete(_ context.Context, p domain.ComposedPrompt) (string, error) {
	m.prompts = append(m.prompts, p)
	return m.text, m.err
}

func TestAnswer_Success(t *testing.T) {
	llm := &mockCompleter{text: "Yes, with a few exceptions."}
	svc := app.NewRulesService(llm, nil, "gpt-4o")

	resp, err := svc.Answer(context.Background(), app.AnswerRequest{
		Question: "Can I counter a spell that can't be countered?",
		Format:   "Commander",
		Style:    "Concise",
	})
	require.NoError(t, err)

	assert.Equal(t, "Yes, with a few exceptions.", resp.Answer)
	assert.Equal(t, domain.FormatCommander, resp.Format)
	assert.Equal(t, domain.StyleConcise, resp.Style)
	assert.Equal(t, "gpt-4o", resp.Model)

	require.Len(t, llm.prompts, 1)
	p := llm.prompts[0]
	assert.Contains(t, p.System, "Focus on Commander format rules and interactions.")
	assert.Equal(t, 600, p.MaxTokens)
	assert.Equal(t, 0.2, p.Temperature)
}

func TestAnswer_EmptyQuestionMakesNoExternalCalls(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t "} {
		llm := &mockCompleter{}
		finder := &fakeFinder{}
		svc := app.NewRulesService(llm, app.NewEnricher(finder, 0, discardLogger()), "gpt-4o")

		_, err := svc.Answer(context.Background(), app.AnswerRequest{Question: q})

		assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
		assert.Empty(t, llm.prompts, "model must not be invoked for %q", q)
		assert.Empty(t, finder.calls, "card lookup must not happen for %q", q)
	}
}

func TestAnswer_EnrichmentFlowsIntoPrompt(t *testing.T) {
	llm := &mockCompleter{text: "It deals 3 damage."}
	finder := &fakeFinder{cards: map[string]domain.CardSummary{
		"Lightning Bolt": {
			Name:       "Lightning Bolt",
			TypeLine:   "Instant",
			OracleText: "Lightning Bolt deals 3 damage to any target.",
		},
	}}
	svc := app.NewRulesService(llm, app.NewEnricher(finder, 0, discardLogger()), "gpt-4o")

	resp, err := svc.Answer(context.Background(), app.AnswerRequest{
		Question: "How does Lightning Bolt interact with Fog?",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lightning Bolt", "Fog"}, resp.DetectedCards)
	assert.Equal(t, []string{"Lightning Bolt", "Fog"}, finder.calls)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0].User, "**Relevant card text:**")
	assert.Contains(t, llm.prompts[0].User, "Rules Text: Lightning Bolt deals 3 damage to any target.")
}

func TestAnswer_EnrichmentDisabled(t *testing.T) {
	llm := &mockCompleter{text: "They get countered."}
	svc := app.NewRulesService(llm, nil, "gpt-4o")

	resp, err := svc.Answer(context.Background(), app.AnswerRequest{
		Question: "How does Lightning Bolt interact with Fog?",
	})
	require.NoError(t, err)

	// Candidates are still detected; only the lookup is skipped.
	assert.Equal(t, []string{"Lightning Bolt", "Fog"}, resp.DetectedCards)
	require.Len(t, llm.prompts, 1)
	assert.NotContains(t, llm.prompts[0].User, "**Relevant card text:**")
}

func TestAnswer_ClassifiedLLMErrorPropagates(t *testing.T) {
	llm := &mockCompleter{err: domain.ErrQuotaExceeded}
	svc := app.NewRulesService(llm, nil, "gpt-4o")

	_, err := svc.Answer(context.Background(), app.AnswerRequest{Question: "Does banding still exist?"})

	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestAnswer_UnknownSettingsFallBack(t *testing.T) {
	llm := &mockCompleter{text: "ok"}
	svc := app.NewRulesService(llm, nil, "gpt-4o")

	resp, err := svc.Answer(context.Background(), app.AnswerRequest{
		Question: "Does deathtouch work through trample?",
		Format:   "Premodern",
		Style:    "Shouty",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.FormatAny, resp.Format)
	assert.Equal(t, domain.StyleDetailed, resp.Style)
}
