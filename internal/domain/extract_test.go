package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

func TestExtractCardNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two card names among question words",
			text: "How does Lightning Bolt interact with Fog?",
			want: []string{"Lightning Bolt", "Fog"},
		},
		{
			name: "no capitalized runs",
			text: "what happens when a creature dies during combat?",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "lowercase connector inside a name",
			text: "Can Force of Will counter anything?",
			want: []string{"Force of Will"},
		},
		{
			name: "stop words and short fragments excluded",
			text: "The And Is X something?",
			want: nil,
		},
		{
			name: "punctuation does not merge adjacent names",
			text: "I cast Fog, Lightning Bolt still resolves",
			want: []string{"Fog", "Lightning Bolt"},
		},
		{
			name: "apostrophes and hyphens survive",
			text: "Does Gaea's Cradle tap for Will-o'-the-Wisp?",
			want: []string{"Gaea's Cradle", "Will-o'-the-Wisp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExtractCardNames(tt.text))
		})
	}
}

func TestExtractCardNames_CapsAtFive(t *testing.T) {
	text := "Shock, Cancel, Terror, Opt, Duress, Pacifism, Counterspell"
	got := domain.ExtractCardNames(text)

	assert.Len(t, got, 5)
	assert.Equal(t, []string{"Shock", "Cancel", "Terror", "Opt", "Duress"}, got)
}

func TestExtractCardNames_LongInputStaysBounded(t *testing.T) {
	text := strings.Repeat("Lightning Bolt hits. ", 50)
	got := domain.ExtractCardNames(text)

	assert.LessOrEqual(t, len(got), 5)
}
