package post

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/interectors/features"
	"github.com/a-h/interectors/models"
	"github.com/a-h/respond"
)

func New(log *slog.Logger, extractor features.Extractor) Handler {
	return Handler{
		log:       log,
		extractor: extractor,
	}
}

// Handler computes the lexical features of a content, question and answer without fetching or generating anything.
type Handler struct {
	log       *slog.Logger
	extractor features.Extractor
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.FeaturesPostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	var resp models.FeaturesPostResponse = h.extractor.Build(req.Content, req.Question, req.Answer)
	respond.WithJSON(w, resp, http.StatusOK)
}
