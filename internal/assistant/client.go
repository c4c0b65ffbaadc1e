package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

var ErrNoCredential = errors.New("assistant: no api key configured")

const (
	defaultModel   = "gemini-3-flash-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Client talks to the remote text-generation service. Every public
// method is total: transport, rate-limit and parse failures degrade to
// the built-in fallback content and are only logged.
type Client struct {
	apiKey    string
	modelName string
	baseURL   string
	http      *http.Client
	log       zerolog.Logger
}

func NewClient(apiKey, modelName, baseURL string, log zerolog.Logger) *Client {
	if modelName == "" {
		modelName = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:    apiKey,
		modelName: modelName,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.modelName)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("assistant: api error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("assistant: empty response")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// QuoteBatch fetches ~7 quote texts for the mode, each stripped of
// surrounding quotation marks. On any failure it returns the built-in
// localized fallback pool in randomized order.
func (c *Client) QuoteBatch(ctx context.Context, mode model.Mode, lang model.Language) []string {
	prompt, ok := quotePrompts[mode][lang]
	if !ok {
		return fallbackQuoteBatch(mode, lang)
	}
	raw, err := c.complete(ctx, prompt+" 请以JSON数组格式返回，仅包含字符串。")
	if err != nil {
		c.log.Warn().Err(err).Str("mode", string(mode)).Msg("quote fetch failed, using fallback pool")
		return fallbackQuoteBatch(mode, lang)
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		c.log.Warn().Err(err).Msg("quote response not a JSON array, using fallback pool")
		return fallbackQuoteBatch(mode, lang)
	}
	out := make([]string, 0, len(list))
	for _, text := range list {
		if cleaned := stripQuoteMarks(text); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	if len(out) == 0 {
		return fallbackQuoteBatch(mode, lang)
	}
	return out
}

// Breakdown turns a goal into 3-8 short task titles. On any failure it
// falls back to splitting the goal on language punctuation, then to the
// fixed localized template.
func (c *Client) Breakdown(ctx context.Context, goal string, lang model.Language) []string {
	raw, err := c.complete(ctx, breakdownPrompt(goal, lang))
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			c.log.Warn().Err(err).Msg("breakdown request failed, using local fallback")
		}
		return localBreakdown(goal, lang)
	}
	if items := extractTasks(raw, lang); len(items) > 0 {
		return items
	}
	return localBreakdown(goal, lang)
}

func breakdownPrompt(goal string, lang model.Language) string {
	language := "Simplified Chinese"
	if lang == model.LanguageEN {
		language = "English"
	}
	return fmt.Sprintf(`You are a productivity expert. Break down the following goal into 3 to 5 actionable tasks for 25-minute Pomodoro sessions.
Goal: %q.
Respond in %s.
Keep titles under 10 words. Output JSON only.`, goal, language)
}
