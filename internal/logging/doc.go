// Package logging configures the process-wide slog logger.
package logging
