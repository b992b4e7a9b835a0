package processor

import (
	"errors"
	"strings"

	"codeberg.org/snonux/textlens/internal/translation"
)

// ErrEmptyInput is returned for blank or whitespace-only text.
var ErrEmptyInput = errors.New("no text to analyze: please enter some text")

// OriginDirect marks text typed or passed on the command line.
const OriginDirect = "direct"

// Request is one analysis job. Build it with NewRequest.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
	Origin     string
}

// RequestOption customizes a Request.
type RequestOption func(*Request)

// WithLanguages overrides the source and target language. Empty values keep
// the defaults.
func WithLanguages(source, target string) RequestOption {
	return func(r *Request) {
		if source != "" {
			r.SourceLang = source
		}
		if target != "" {
			r.TargetLang = target
		}
	}
}

// WithOrigin records where the text came from (a file name, "upload").
func WithOrigin(origin string) RequestOption {
	return func(r *Request) {
		if origin != "" {
			r.Origin = origin
		}
	}
}

// NewRequest validates text and applies opts.
func NewRequest(text string, opts ...RequestOption) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, ErrEmptyInput
	}

	req := Request{
		Text:       text,
		SourceLang: translation.DefaultSourceLanguage,
		TargetLang: translation.DefaultTargetLanguage,
		Origin:     OriginDirect,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}
