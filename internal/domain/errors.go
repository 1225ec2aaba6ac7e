package domain

import "errors"

var (
	ErrEmptyQuestion = errors.New("question must not be empty")
	ErrCardNotFound  = errors.New("card not found")
	ErrQuotaExceeded = errors.New("model API quota exceeded")
	ErrInvalidAPIKey = errors.New("model API rejected the API key")
	ErrUpstreamLLM   = errors.New("upstream LLM failure")
)

// UserMessage turns a classified pipeline error into the displayable text
// shown to the asker. Quota and credential failures get fixed, actionable
// wording; anything else is wrapped in a generic failure notice so the raw
// transport error never surfaces on its own.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyQuestion):
		return "Please enter a question."
	case errors.Is(err, ErrQuotaExceeded):
		return "API quota exceeded. You've reached your OpenAI API usage limit. " +
			"Check your billing, add credits to your account, or try again later. " +
			"This is a billing issue, not a problem with the app."
	case errors.Is(err, ErrInvalidAPIKey):
		return "Invalid API key. Please check your OpenAI API key."
	default:
		return "Error getting response: " + err.Error()
	}
}
