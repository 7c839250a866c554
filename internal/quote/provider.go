package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/keyring"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	prompt = `请从汉传大乘佛教经典（如《金刚经》、《心经》、《法华经》、《六祖坛经》等）中，摘录一句关于修行、般若、定力或清净心的经文。
要求：
1. 仅限经文原句，文言文，不要白话解释。
2. 长度不超过30个字。
3. 返回一个JSON对象，包含 'text' (经文内容) 和 'source' (出处，如《金刚经》)。`
)

// GeminiProvider fetches a short classical-text quotation from the Gemini
// generateContent endpoint. Every failure mode (missing key, transport error,
// non-2xx status, malformed payload) is returned as a plain error; callers
// treat them all identically.
type GeminiProvider struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  func() (string, error)
}

// NewGeminiProvider returns a provider that reads its API key from the OS
// keyring on each call.
func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{
		client:  &http.Client{Timeout: constants.QuoteFetchTimeout},
		baseURL: defaultBaseURL,
		model:   defaultModel,
		apiKey:  keyring.GetAPIKey,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (p *GeminiProvider) Fetch(ctx context.Context) (models.QuoteData, error) {
	key, err := p.apiKey()
	if err != nil {
		return models.QuoteData{}, fmt.Errorf("no API key available: %w", err)
	}

	reqBody := generateRequest{
		Contents:         []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return models.QuoteData{}, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return models.QuoteData{}, err
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", key)
	req.Header.Set("X-Request-Id", requestID)

	logger.Debug("Fetching quote", "request_id", requestID, "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return models.QuoteData{}, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.QuoteData{}, fmt.Errorf("quote provider returned status %d (request %s)", resp.StatusCode, requestID)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.QuoteData{}, fmt.Errorf("failed to read response: %w", err)
	}

	return parseQuote(body)
}

// parseQuote extracts the {text, source} object out of a generateContent
// response body.
func parseQuote(body []byte) (models.QuoteData, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.QuoteData{}, fmt.Errorf("malformed provider response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.QuoteData{}, fmt.Errorf("empty provider response")
	}

	raw := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var quote struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		return models.QuoteData{}, fmt.Errorf("malformed quote payload: %w", err)
	}
	if quote.Text == "" {
		return models.QuoteData{}, fmt.Errorf("provider returned empty quote text")
	}

	return models.QuoteData{Text: quote.Text, Source: quote.Source}, nil
}
