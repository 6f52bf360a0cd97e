// Package handlers holds behaviour shared by the HTTP handlers in its subpackages.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/interectors/content"
	"github.com/a-h/interectors/orchestrator"
	"github.com/a-h/respond"
)

// WriteError logs err and responds with the status code that matches it.
func WriteError(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrInvalidInput):
		log.Warn("invalid input", slog.Any("error", err))
		respond.WithError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, content.ErrUnavailable):
		log.Warn("content unavailable", slog.Any("error", err))
		respond.WithError(w, "content unavailable", http.StatusBadGateway)
	case errors.Is(err, orchestrator.ErrGeneration):
		log.Error("failed to generate content", slog.Any("error", err))
		respond.WithError(w, "failed to generate content", http.StatusInternalServerError)
	default:
		log.Error("request failed", slog.Any("error", err))
		respond.WithError(w, "internal server error", http.StatusInternalServerError)
	}
}
