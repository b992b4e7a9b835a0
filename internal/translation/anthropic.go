package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel   = "claude-3-5-haiku-latest"
	anthropicMaxReplyTokens = 4096
)

// AnthropicTranslator translates through the Anthropic Messages API.
type AnthropicTranslator struct {
	apiKey string
	model  string
	client anthropic.Client
}

// NewAnthropicTranslator creates a translator; baseURL overrides the API
// host when set.
func NewAnthropicTranslator(apiKey, model, baseURL string) *AnthropicTranslator {
	if model == "" {
		model = defaultAnthropicModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicTranslator{
		apiKey: apiKey,
		model:  model,
		client: anthropic.NewClient(opts...),
	}
}

func (t *AnthropicTranslator) Name() string {
	return "anthropic"
}

func (t *AnthropicTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("Anthropic API key not found")
	}

	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: anthropicMaxReplyTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(text, source, target))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
