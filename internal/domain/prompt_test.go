package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

func TestCompose_StyleParameters(t *testing.T) {
	tests := []struct {
		style       domain.ResponseStyle
		maxTokens   int
		temperature float64
	}{
		{domain.StyleExtraConcise, 300, 0.1},
		{domain.StyleConcise, 600, 0.2},
		{domain.StyleDetailed, 1200, 0.3},
		{domain.StyleJudgeLevel, 2000, 0.2},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := domain.Compose("Can I respond to a trigger?", domain.FormatAny, tt.style, "")
			assert.Equal(t, tt.maxTokens, p.MaxTokens)
			assert.Equal(t, tt.temperature, p.Temperature)
		})
	}
}

func TestCompose_UnknownStyleFallsBackToDetailed(t *testing.T) {
	p := domain.Compose("q", domain.FormatAny, domain.ResponseStyle("Telegraphic"), "")
	detailed := domain.Compose("q", domain.FormatAny, domain.StyleDetailed, "")

	assert.Equal(t, detailed, p)
	assert.Equal(t, 1200, p.MaxTokens)
	assert.Equal(t, 0.3, p.Temperature)
}

func TestFormatInstruction(t *testing.T) {
	assert.Equal(t, "Consider all formats when answering.",
		domain.FormatInstruction(domain.FormatAny))

	for _, f := range []domain.FormatContext{
		domain.FormatStandard, domain.FormatModern, domain.FormatLegacy,
		domain.FormatCommander, domain.FormatLimited,
	} {
		assert.Equal(t, "Focus on "+string(f)+" format rules and interactions.",
			domain.FormatInstruction(f))
	}
}

func TestCompose_EndToEnd(t *testing.T) {
	question := "Can I counter a spell that can't be countered?"
	p := domain.Compose(question, domain.FormatCommander, domain.StyleConcise, "")

	assert.Contains(t, p.System, "Focus on Commander format rules and interactions.")
	assert.Contains(t, p.System, "Keep your answer brief and to the point.")
	assert.Contains(t, p.User, "**Question:** "+question)
	assert.Contains(t, p.User, "The stack resolves last-in, first-out (LIFO)")
	assert.Equal(t, 600, p.MaxTokens)
	assert.Equal(t, 0.2, p.Temperature)
}

func TestCompose_CardContext(t *testing.T) {
	withCtx := domain.Compose("q", domain.FormatAny, domain.StyleDetailed, "Card: Fog\nRules Text: Prevent all combat damage.")
	withoutCtx := domain.Compose("q", domain.FormatAny, domain.StyleDetailed, "")

	assert.Contains(t, withCtx.User, "**Relevant card text:**\nCard: Fog")
	assert.NotContains(t, withoutCtx.User, "**Relevant card text:**")
}

func TestCompose_IsPure(t *testing.T) {
	a := domain.Compose("q", domain.FormatModern, domain.StyleJudgeLevel, "Card: Shock")
	b := domain.Compose("q", domain.FormatModern, domain.StyleJudgeLevel, "Card: Shock")

	assert.Equal(t, a, b)
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, domain.StyleConcise, domain.ParseStyle("Concise"))
	assert.Equal(t, domain.StyleDetailed, domain.ParseStyle(""))
	assert.Equal(t, domain.StyleDetailed, domain.ParseStyle("nonsense"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, domain.FormatCommander, domain.ParseFormat("Commander"))
	assert.Equal(t, domain.FormatAny, domain.ParseFormat(""))
	assert.Equal(t, domain.FormatAny, domain.ParseFormat("Vintage Plus"))
}
