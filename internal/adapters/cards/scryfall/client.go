// Package scryfall implements ports.CardFinder against the Scryfall API's
// fuzzy named-card endpoint.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
	"github.com/tysonian801/mtg-chatbot/internal/ports"
)

var _ ports.CardFinder = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// card mirrors the subset of Scryfall's card object we keep. Every field is
// optional in the source data.
type card struct {
	Name       string `json:"name"`
	ManaCost   string `json:"mana_cost"`
	TypeLine   string `json:"type_line"`
	OracleText string `json:"oracle_text"`
	Power      string `json:"power"`
	Toughness  string `json:"toughness"`
}

// FindNamed performs a fuzzy name lookup. A 404 means Scryfall could not
// resolve the name to a single card and maps to domain.ErrCardNotFound.
func (c *Client) FindNamed(ctx context.Context, name string) (domain.CardSummary, error) {
	u := c.baseURL + "/cards/named?fuzzy=" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.CardSummary{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CardSummary{}, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.CardSummary{}, fmt.Errorf("%w: %q", domain.ErrCardNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.CardSummary{}, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}

	var cd card
	if err := json.NewDecoder(resp.Body).Decode(&cd); err != nil {
		return domain.CardSummary{}, fmt.Errorf("decode response: %w", err)
	}

	return domain.CardSummary{
		Name:       cd.Name,
		ManaCost:   cd.ManaCost,
		TypeLine:   cd.TypeLine,
		OracleText: cd.OracleText,
		Power:      cd.Power,
		Toughness:  cd.Toughness,
	}, nil
}
