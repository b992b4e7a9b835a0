package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	googleTranslateEndpoint = "https://translate.googleapis.com/translate_a/single"
	userAgent               = "textlens/1.0 (+https://codeberg.org/snonux/textlens)"
)

// GoogleTranslator talks to the free gtx endpoint of Google Translate. It
// needs no API key.
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
}

// NewGoogleTranslator creates a translator for endpoint; an empty endpoint
// selects the public one.
func NewGoogleTranslator(endpoint string) *GoogleTranslator {
	if endpoint == "" {
		endpoint = googleTranslateEndpoint
	}
	return &GoogleTranslator{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (g *GoogleTranslator) Name() string {
	return "google"
}

// Translate posts text as a form body so long inputs do not hit URL limits.
func (g *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")

	form := url.Values{}
	form.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.endpoint+"?"+params.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, preview(body))
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated segments from the nested
// array reply: [[["translated","original",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("malformed response: %s", preview(body))
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("malformed response segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	return sb.String(), nil
}

func preview(body []byte) string {
	raw := string(body)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return raw
}
