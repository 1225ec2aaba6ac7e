package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tysonian801/mtg-chatbot/internal/app"
	"github.com/tysonian801/mtg-chatbot/internal/domain"
)

const maxQuestionLen = 2000

// exampleQuestions are the canned prompts surfaced by GET /v1/examples.
var exampleQuestions = []string{
	"How does indestructible interact with -1/-1 counters?",
	"Can I counter a spell that can't be countered?",
	"What happens when a creature with protection from red is targeted by a red spell?",
	"How do multiple instances of the same ability work?",
	"What's the difference between 'destroy' and 'exile'?",
	"Can I respond to a triggered ability?",
	"How does the stack work with multiple spells?",
	"What happens if a creature loses all abilities?",
}

type Handler struct {
	svc *app.RulesService
}

func NewHandler(svc *app.RulesService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/answer", h.Answer)
	e.GET("/v1/examples", h.Examples)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Examples(c echo.Context) error {
	return c.JSON(http.StatusOK, ExamplesResponse{Examples: exampleQuestions})
}

func (h *Handler) Answer(c echo.Context) error {
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 2000 characters"})
	}

	resp, err := h.svc.Answer(c.Request().Context(), app.AnswerRequest{
		Question: req.Question,
		Format:   req.Format,
		Style:    req.Style,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, AnswerResponse{
		Answer:        resp.Answer,
		Format:        string(resp.Format),
		Style:         string(resp.Style),
		DetectedCards: resp.DetectedCards,
		Meta: MetaResp{
			Model:     resp.Model,
			RequestID: requestID,
			LatencyMS: resp.LatencyMS,
		},
	})
}

// mapError translates classified pipeline errors into HTTP responses carrying
// their displayable messages. Only truly unclassified failures become an
// opaque 500.
func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrEmptyQuestion):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.UserMessage(err)})
	case errors.Is(err, domain.ErrQuotaExceeded):
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: domain.UserMessage(err)})
	case errors.Is(err, domain.ErrInvalidAPIKey):
		slog.Error("model rejected API key", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: domain.UserMessage(err)})
	case errors.Is(err, domain.ErrUpstreamLLM):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: domain.UserMessage(err)})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
