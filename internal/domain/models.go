package domain

// ResponseStyle controls how verbose and citation-heavy an answer should be.
type ResponseStyle string

const (
	StyleExtraConcise ResponseStyle = "Extra-Concise"
	StyleConcise      ResponseStyle = "Concise"
	StyleDetailed     ResponseStyle = "Detailed"
	StyleJudgeLevel   ResponseStyle = "Judge-Level"
)

// FormatContext is the competitive format a question should be answered under.
type FormatContext string

const (
	FormatAny       FormatContext = "Any Format"
	FormatStandard  FormatContext = "Standard"
	FormatModern    FormatContext = "Modern"
	FormatLegacy    FormatContext = "Legacy"
	FormatCommander FormatContext = "Commander"
	FormatLimited   FormatContext = "Limited"
)

// ParseStyle maps a raw string to a ResponseStyle, falling back to
// StyleDetailed for anything unrecognized.
func ParseStyle(raw string) ResponseStyle {
	switch s := ResponseStyle(raw); s {
	case StyleExtraConcise, StyleConcise, StyleDetailed, StyleJudgeLevel:
		return s
	default:
		return StyleDetailed
	}
}

// ParseFormat maps a raw string to a FormatContext, falling back to FormatAny
// for anything unrecognized (including the empty string).
func ParseFormat(raw string) FormatContext {
	switch f := FormatContext(raw); f {
	case FormatStandard, FormatModern, FormatLegacy, FormatCommander, FormatLimited:
		return f
	default:
		return FormatAny
	}
}

// CardSummary is the reduced profile of one card fetched from the card
// database. Every field except Name may be empty; absent fields are omitted
// from the formatted context.
type CardSummary struct {
	Name       string
	ManaCost   string
	TypeLine   string
	OracleText string
	Power      string
	Toughness  string
}

// ComposedPrompt is a fully resolved model request: instructions, message and
// invocation parameters. Produced by Compose, consumed unchanged by the LLM
// adapter.
type ComposedPrompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}
