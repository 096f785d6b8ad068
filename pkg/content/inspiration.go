package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paperpress/daybook/pkg/cache"
	"github.com/paperpress/daybook/pkg/errors"
)

const (
	openRouterURL    = "https://openrouter.ai/api/v1/chat/completions"
	inspirationModel = "mistralai/mistral-7b-instruct:free"

	// Inspiration texts are stable for a given month; cache them long
	// enough to survive repeated generation runs.
	inspirationTTL = 30 * 24 * time.Hour
)

// OpenRouter generates a short inspirational paragraph per month through
// the OpenRouter chat-completion API. Without an API key every call fails
// with CONTENT_UNAVAILABLE and the composer falls back to the fixed
// sentence.
type OpenRouter struct {
	// BaseURL is the chat-completions endpoint. Overridable for tests.
	BaseURL string

	apiKey string
	client *Client
}

// NewOpenRouter creates an inspiration source. apiKey may be empty, in
// which case the source is permanently unavailable.
func NewOpenRouter(c cache.Cache, apiKey string) *OpenRouter {
	headers := map[string]string{
		"Authorization": "Bearer " + apiKey,
	}
	return &OpenRouter{
		BaseURL: openRouterURL,
		apiKey:  apiKey,
		client:  NewClient(c, inspirationTTL, headers),
	}
}

// MonthInspiration returns a poetic paragraph about the given month,
// caching the result per (month, year).
func (o *OpenRouter) MonthInspiration(ctx context.Context, month string, year int) (string, error) {
	if o.apiKey == "" {
		return "", errors.New(errors.ErrCodeContentUnavailable, "no OpenRouter API key configured")
	}

	key := fmt.Sprintf("inspiration:%s:%d", month, year)
	var text string
	err := o.client.Cached(ctx, key, false, &text, func() error {
		got, err := o.generate(ctx, month, year)
		if err != nil {
			return err
		}
		text = got
		return nil
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeContentUnavailable, err, "generate inspiration for %s %d", month, year)
	}
	return text, nil
}

func (o *OpenRouter) generate(ctx context.Context, month string, year int) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, poetic, and inspiring paragraph (approx 60-80 words) "+
			"about the month of %s %d. "+
			"Focus on the feeling of the season, new beginnings, or productivity. "+
			"Do not use hashtags.", month, year)

	req := chatRequest{
		Model: inspirationModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp chatResponse
	if err := o.client.PostJSON(ctx, o.BaseURL, nil, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	// Some models leak their sentinel tokens into the text.
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	text = strings.ReplaceAll(text, "<s>", "")
	text = strings.ReplaceAll(text, "</s>", "")
	return strings.TrimSpace(text), nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var _ InspirationSource = (*OpenRouter)(nil)
