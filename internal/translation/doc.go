// Package translation provides the translation gateway used by the analysis
// pipeline. A Gateway wraps one provider backend (Google, OpenAI, Gemini,
// Anthropic or the identity backend) with a per-call timeout, a circuit
// breaker and an optional cache, and reports every call as an explicit
// Result instead of an error.
package translation
