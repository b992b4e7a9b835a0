package translation

import "fmt"

// buildPrompt is shared by the LLM-backed providers.
func buildPrompt(text, source, target string) string {
	return fmt.Sprintf("Translate the following %s text to %s. Keep the sentence boundaries and punctuation of the original. Respond with only the %s translation, nothing else.\n\n%s",
		LanguageName(source), LanguageName(target), LanguageName(target), text)
}
