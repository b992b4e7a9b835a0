package translation

import "context"

// IdentityTranslator returns its input unchanged. It keeps the pipeline
// usable offline and when the input is already in the target language.
type IdentityTranslator struct{}

func (IdentityTranslator) Name() string {
	return "none"
}

func (IdentityTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
