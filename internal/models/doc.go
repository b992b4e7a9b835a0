// Package models lists the OpenAI models usable as translation or sentiment
// backends with the configured API key.
package models
