package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister; baseURL overrides the API host when
// set.
func NewLister(apiKey, baseURL string) *Lister {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Catalog groups model IDs by how textlens can use them.
type Catalog struct {
	Chat  []string
	Other []string
}

// Fetch retrieves and categorizes the models visible to the API key
func (l *Lister) Fetch(ctx context.Context) (*Catalog, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .textlens.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	catalog := &Catalog{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			catalog.Chat = append(catalog.Chat, model.ID)
		} else {
			catalog.Other = append(catalog.Other, model.ID)
		}
	}

	sort.Strings(catalog.Chat)
	sort.Strings(catalog.Other)
	return catalog, nil
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "whisper", "embedding", "realtime", "transcribe", "moderation", "image"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "o1") ||
		strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") || strings.Contains(id, "chat")
}

// ListAvailableModels prints the catalog to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	catalog, err := l.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI Models:")
	fmt.Fprintln(w, "\nChat Models (usable for --provider openai and --sentiment openai):")
	if len(catalog.Chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, model := range catalog.Chat {
		fmt.Fprintf(w, "  %s\n", model)
	}

	if len(catalog.Other) > 0 {
		fmt.Fprintf(w, "\n... and %d other models (speech, image, embedding)\n", len(catalog.Other))
	}

	return nil
}
