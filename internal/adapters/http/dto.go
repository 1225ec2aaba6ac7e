package http

// AnswerRequest is the JSON body accepted by POST /v1/answer.
type AnswerRequest struct {
	Question string `json:"question"`
	Format   string `json:"format"`
	Style    string `json:"style"`
}

// AnswerResponse is the JSON shape returned by POST /v1/answer.
type AnswerResponse struct {
	Answer        string   `json:"answer"`
	Format        string   `json:"format"`
	Style         string   `json:"style"`
	DetectedCards []string `json:"detected_cards,omitempty"`
	Meta          MetaResp `json:"meta"`
}

type MetaResp struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ExamplesResponse struct {
	Examples []string `json:"examples"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
