package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const scoringPrompt = `Rate the sentiment of the text below. Reply with a JSON object of the form
{"polarity": <number from -1 (very negative) to 1 (very positive)>, "subjectivity": <number from 0 (objective) to 1 (subjective)>}
and nothing else.

Text:
`

// OpenAIScorer asks a chat model to rate the text.
type OpenAIScorer struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIScorer creates a scorer; baseURL overrides the API host when set.
func NewOpenAIScorer(apiKey, model, baseURL string) *OpenAIScorer {
	if model == "" {
		model = openai.GPT4oMini
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIScorer{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (o *OpenAIScorer) Name() string {
	return "openai"
}

func (o *OpenAIScorer) Score(ctx context.Context, text string) (Score, error) {
	if o.apiKey == "" {
		return Score{}, fmt.Errorf("OpenAI API key not found")
	}
	if strings.TrimSpace(text) == "" {
		return Score{}, nil
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: scoringPrompt + text,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
	})
	if err != nil {
		return Score{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Score{}, fmt.Errorf("no score returned")
	}

	return parseScore(resp.Choices[0].Message.Content)
}

// parseScore decodes the model reply, tolerating a markdown code fence.
func parseScore(reply string) (Score, error) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Polarity     *float64 `json:"polarity"`
		Subjectivity *float64 `json:"subjectivity"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Score{}, fmt.Errorf("malformed score reply: %w", err)
	}
	if payload.Polarity == nil || payload.Subjectivity == nil {
		return Score{}, fmt.Errorf("score reply is missing polarity or subjectivity: %q", cleaned)
	}

	return Score{Polarity: *payload.Polarity, Subjectivity: *payload.Subjectivity}, nil
}
