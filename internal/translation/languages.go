package translation

import (
	"fmt"
	"slices"
	"sort"
)

const (
	DefaultSourceLanguage = "es"
	DefaultTargetLanguage = "en"
)

// LanguageNames maps ISO 639-1 codes to English names.
var LanguageNames = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"tr": "Turkish",
	"zh": "Chinese",
}

// LanguageName returns the English name for code, or code itself.
func LanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return code
}

// LanguageCodes returns the supported codes, sorted.
func LanguageCodes() []string {
	codes := make([]string, 0, len(LanguageNames))
	for code := range LanguageNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// AnalysisLanguages are the targets the stop-word list and the sentiment
// scorers are built for.
var AnalysisLanguages = []string{"en"}

// ValidateLanguages checks that both codes are known and differ, and that
// the target is one the analysis supports. Any known language may be the
// source.
func ValidateLanguages(source, target string) error {
	if _, ok := LanguageNames[source]; !ok {
		return fmt.Errorf("unsupported source language %q", source)
	}
	if !slices.Contains(AnalysisLanguages, target) {
		return fmt.Errorf("unsupported target language %q: analysis supports %v", target, AnalysisLanguages)
	}
	if source == target {
		return fmt.Errorf("source and target language are both %q", source)
	}
	return nil
}
