package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/textlens/internal/sentiment"
)

// MockTranslator mocks a translation backend
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	// Err, when set, fails every call
	Err error

	mu    sync.Mutex
	Calls []string
}

// Name returns the provider name reported by the gateway
func (m *MockTranslator) Name() string {
	return "mock"
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang))
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// CallCount returns how many times Translate was called
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockScorer mocks a sentiment scorer
type MockScorer struct {
	Scores map[string]sentiment.Score
	Errors map[string]error
	// Default is returned for texts without an entry in Scores
	Default sentiment.Score

	mu    sync.Mutex
	Calls []string
}

// Name returns the scorer name
func (m *MockScorer) Name() string {
	return "mock"
}

// Score mocks scoring text
func (m *MockScorer) Score(ctx context.Context, text string) (sentiment.Score, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return sentiment.Score{}, err
	}
	if s, ok := m.Scores[text]; ok {
		return s, nil
	}
	return m.Default, nil
}

// CallCount returns how many times Score was called
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// SpanishReview returns a short positive Spanish review and its English
// translation
func (g *TestDataGenerator) SpanishReview() (original, translated string) {
	return "Me encanta este producto. Es muy bueno.", "I love this product. It is very good."
}

// Paragraph returns a text with n numbered sentences
func (g *TestDataGenerator) Paragraph(prefix string, n int) string {
	text := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			text += " "
		}
		text += fmt.Sprintf("%s %d.", prefix, i)
	}
	return text
}

// BOMText returns UTF-8 text prefixed with a byte order mark
func (g *TestDataGenerator) BOMText(text string) []byte {
	return append([]byte{0xEF, 0xBB, 0xBF}, text...)
}
