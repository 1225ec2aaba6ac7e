package domain

import (
	"fmt"
	"strings"
)

// styleParams is one row of the style table: instruction text plus the model
// invocation parameters that go with it.
type styleParams struct {
	instruction string
	maxTokens   int
	temperature float64
}

var styleTable = map[ResponseStyle]styleParams{
	StyleExtraConcise: {
		instruction: "Be extremely concise. Unless absolutely necessary to answer the question accurately, answer in one or two sentences. Bullet points are helpful.",
		maxTokens:   300,
		temperature: 0.1,
	},
	StyleConcise: {
		instruction: "Keep your answer brief and to the point. Don't include more detail than necessary. Bullet points are helpful.",
		maxTokens:   600,
		temperature: 0.2,
	},
	StyleDetailed: {
		instruction: "Provide a thorough explanation with examples.",
		maxTokens:   1200,
		temperature: 0.3,
	},
	StyleJudgeLevel: {
		instruction: "Give a comprehensive answer with rule citations and step-by-step breakdowns.",
		maxTokens:   2000,
		temperature: 0.2,
	},
}

const anyFormatInstruction = "Consider all formats when answering."

// systemTemplate has two substitution points: the format instruction and the
// style instruction.
const systemTemplate = `You are an expert Magic: The Gathering judge assistant with deep knowledge of MTG rules, card interactions, and tournament rulings.

**Format Context:** %s
**Response Style:** %s

**Your expertise includes:**
- Comprehensive understanding of MTG Comprehensive Rules
- Knowledge of card interactions and edge cases
- Familiarity with tournament rulings and judge decisions
- Understanding of different formats (Standard, Modern, Legacy, Commander, etc.)

**When answering:**
1. Use precise MTG terminology and rule citations
2. Explain the reasoning behind your answer
3. Reference specific rules when possible (e.g., "Rule 702.12b states...")
4. If card text is provided, reference it in your explanation
5. Be concise but thorough
6. Use a friendly, helpful tone
7. If the question involves timing or the stack, explain the sequence clearly
8. For complex interactions, break down the steps

**Format your answers with:**
- Clear explanations
- Rule citations when relevant
- Step-by-step breakdowns for complex interactions
- Examples when helpful`

// rulesContext is the fixed block of background facts prepended to every
// question so the model reasons from the same baseline.
const rulesContext = `**Key MTG Concepts to Consider:**
- State-based actions happen before any player gets priority
- The stack resolves last-in, first-out (LIFO)
- Protection prevents damage, enchanting, blocking, and targeting
- Indestructible prevents destruction but not other ways of leaving the battlefield
- Replacement effects can modify how events occur
- Triggered abilities use "when," "whenever," or "at"
- Activated abilities have costs and effects separated by colons`

// FormatInstruction resolves the format-focus sentence for the system prompt.
func FormatInstruction(format FormatContext) string {
	if format == FormatAny || format == "" {
		return anyFormatInstruction
	}
	return fmt.Sprintf("Focus on %s format rules and interactions.", format)
}

// Compose builds the full model request for a question. It is a pure
// function: identical inputs always produce an identical ComposedPrompt.
// Unrecognized styles resolve to the Detailed row and unrecognized formats to
// the generic instruction; empty questions must be rejected before this
// point.
func Compose(question string, format FormatContext, style ResponseStyle, cardContext string) ComposedPrompt {
	params, ok := styleTable[style]
	if !ok {
		params = styleTable[StyleDetailed]
	}

	system := fmt.Sprintf(systemTemplate, FormatInstruction(format), params.instruction)

	var user strings.Builder
	user.WriteString(rulesContext)
	user.WriteString("\n\n**Question:** ")
	user.WriteString(question)
	if cardContext != "" {
		user.WriteString("\n\n**Relevant card text:**\n")
		user.WriteString(cardContext)
	}

	return ComposedPrompt{
		System:      system,
		User:        user.String(),
		MaxTokens:   params.maxTokens,
		Temperature: params.temperature,
	}
}
