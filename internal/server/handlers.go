package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/translation"
)

const (
	outcomeSuccess  = "success"
	outcomeDegraded = "degraded"
	outcomeEmpty    = "empty"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
)

// AnalyzeRequest is the JSON body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

func (s *Server) analyzeText(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.config.UploadLimit)).Decode(&body); err != nil {
		s.metrics.analyses.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	s.analyze(w, r, body.Text, body.Source, body.Target, processor.OriginDirect)
}

func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.UploadLimit+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.metrics.analyses.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("multipart field \"file\" is required: %v", err))
		return
	}
	defer file.Close()

	text, err := input.ReadUpload(header.Filename, file, s.config.UploadLimit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if s.config.StripMarkdown && input.IsMarkdown(header.Filename) {
		text = input.StripMarkdown(text)
	}

	s.analyze(w, r, text, r.FormValue("source"), r.FormValue("target"), header.Filename)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request, text, source, target, origin string) {
	if source == "" {
		source = s.config.SourceLang
	}
	if target == "" {
		target = s.config.TargetLang
	}
	if err := translation.ValidateLanguages(source, target); err != nil {
		s.metrics.analyses.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := processor.NewRequest(text,
		processor.WithLanguages(source, target),
		processor.WithOrigin(origin))
	if err != nil {
		s.respondError(w, err)
		return
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.metrics.duration.Observe(time.Since(start).Seconds())
	if result.Translated {
		s.metrics.analyses.WithLabelValues(outcomeSuccess).Inc()
	} else {
		s.metrics.fallbacks.Inc()
		s.metrics.analyses.WithLabelValues(outcomeDegraded).Inc()
	}

	writeJSON(w, http.StatusOK, result)
}

// respondError maps pipeline and input errors to HTTP statuses.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var (
		decodeErr  *input.DecodeError
		scoringErr *sentiment.ScoringError
		maxErr     *http.MaxBytesError
	)

	switch {
	case errors.Is(err, processor.ErrEmptyInput):
		s.metrics.analyses.WithLabelValues(outcomeEmpty).Inc()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"warning": err.Error()})
	case errors.As(err, &decodeErr), errors.Is(err, input.ErrUnsupportedExtension):
		s.metrics.analyses.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, input.ErrTooLarge), errors.As(err, &maxErr):
		s.metrics.analyses.WithLabelValues(outcomeInvalid).Inc()
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &scoringErr):
		s.metrics.analyses.WithLabelValues(outcomeFailed).Inc()
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.metrics.analyses.WithLabelValues(outcomeFailed).Inc()
		slog.Error("[Server] Analysis failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
