// Package ai talks to the Gemini generative-language API. Every operation
// degrades to a safe localized default on failure; nothing here ever returns
// an error to a caller that could crash the UI.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yonasmekonnen/nesha/internal/constants"
	"github.com/yonasmekonnen/nesha/internal/i18n"
	"github.com/yonasmekonnen/nesha/internal/keyring"
	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 20 * time.Second
)

var errInvalidResponse = errors.New("invalid model response")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// AnalyzedHabit is one structured suggestion from the analyzer.
type AnalyzedHabit struct {
	Title     string `json:"title"`
	Advice    string `json:"advice"`
	Frequency string `json:"frequency"`
}

// NewClient builds a client, or nil when cfg carries no API key. Callers
// must treat a nil client as "AI unavailable"; every method on *Client is
// nil-safe and degrades to its fallback.
func NewClient(cfg Config) *Client {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// FromEnvironment resolves the API key from the environment variable first,
// then the OS keyring, and returns nil when neither holds one.
func FromEnvironment() *Client {
	apiKey := os.Getenv(constants.APIKeyEnvVar)
	if apiKey == "" {
		if key, err := keyring.GetAPIKey(); err == nil {
			apiKey = key
		}
	}
	return NewClient(Config{APIKey: apiKey})
}

// DailyAdvice returns a short aphorism. On any failure it returns the fixed
// localized fallback string, never an error.
func (c *Client) DailyAdvice(ctx context.Context, lang models.Language) string {
	if c == nil {
		return i18n.T(lang).OfflineAdvice
	}

	text, err := c.generate(ctx, systemInstruction, []content{userContent(advicePrompt(lang))}, false)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Warn("Daily advice request failed", "error", err)
		return i18n.T(lang).AdviceError
	}
	return strings.TrimSpace(text)
}

// Analyze turns free text about a struggle into up to three structured habit
// suggestions. Failures and schema-invalid items collapse to an empty list.
func (c *Client) Analyze(ctx context.Context, input string, lang models.Language) []AnalyzedHabit {
	if c == nil || strings.TrimSpace(input) == "" {
		return nil
	}

	text, err := c.generate(ctx, analyzerInstruction, []content{userContent(analyzePrompt(input))}, true)
	if err != nil {
		logger.Warn("Analyzer request failed", "error", err)
		return nil
	}
	return parseAnalyzedHabits(text)
}

// --- wire types ---

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

func userContent(text string) content {
	return content{Role: "user", Parts: []part{{Text: text}}}
}

func modelContent(text string) content {
	return content{Role: "model", Parts: []part{{Text: text}}}
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call. Single attempt, bounded by the
// client timeout.
func (c *Client) generate(ctx context.Context, instruction string, contents []content, wantJSON bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := generateRequest{
		Contents:         contents,
		GenerationConfig: generationConfig{Temperature: 0.7},
	}
	if instruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: instruction}}}
	}
	if wantJSON {
		req.GenerationConfig.ResponseMimeType = "application/json"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("request failed, status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errInvalidResponse
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// parseAnalyzedHabits validates the analyzer payload against the fixed
// {title, advice, frequency} schema, dropping items that fail, and caps the
// result at three suggestions.
func parseAnalyzedHabits(text string) []AnalyzedHabit {
	var raw []AnalyzedHabit
	if err := json.Unmarshal([]byte(extractJSONPayload(text)), &raw); err != nil {
		logger.Warn("Analyzer response is not a JSON array", "error", err)
		return nil
	}

	var habits []AnalyzedHabit
	for _, h := range raw {
		h.Title = strings.TrimSpace(h.Title)
		h.Advice = strings.TrimSpace(h.Advice)
		h.Frequency = strings.ToLower(strings.TrimSpace(h.Frequency))
		if h.Title == "" || h.Advice == "" || !models.ValidFrequency(h.Frequency) {
			continue
		}
		habits = append(habits, h)
		if len(habits) == 3 {
			break
		}
	}
	return habits
}

// extractJSONPayload strips markdown code fences and surrounding prose so a
// fenced or chatty reply still unmarshals.
func extractJSONPayload(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	start := strings.IndexAny(trimmed, "[{")
	if start < 0 {
		return trimmed
	}
	closer := "]"
	if trimmed[start] == '{' {
		closer = "}"
	}
	if end := strings.LastIndex(trimmed, closer); end > start {
		return trimmed[start : end+1]
	}
	return trimmed
}
