package post

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/interectors/auth"
	"github.com/a-h/interectors/db"
	"github.com/a-h/interectors/handlers"
	"github.com/a-h/interectors/models"
	"github.com/a-h/respond"
)

type Summarizer interface {
	Summarize(ctx context.Context, url string) (string, error)
}

type Recorder interface {
	InteractionPut(ctx context.Context, i db.Interaction) (id int64, err error)
}

func New(log *slog.Logger, summarizer Summarizer, recorder Recorder) Handler {
	return Handler{
		log:        log,
		summarizer: summarizer,
		recorder:   recorder,
		now:        time.Now,
	}
}

type Handler struct {
	log        *slog.Logger
	summarizer Summarizer
	recorder   Recorder
	now        func() time.Time
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := auth.User(r)

	var req models.SummarizePostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		respond.WithError(w, "url is required", http.StatusBadRequest)
		return
	}

	h.log.Info("summarizing page", slog.String("user", user), slog.String("url", req.URL))
	summary, err := h.summarizer.Summarize(r.Context(), req.URL)
	if err != nil {
		handlers.WriteError(h.log, w, err)
		return
	}

	if _, err = h.recorder.InteractionPut(r.Context(), db.Interaction{
		User:      user,
		Kind:      string(models.InteractionKindSummary),
		URL:       req.URL,
		Response:  summary,
		CreatedAt: h.now(),
	}); err != nil {
		h.log.Error("failed to record interaction", slog.Any("error", err))
	}

	respond.WithJSON(w, models.SummarizePostResponse{Summary: summary}, http.StatusOK)
}
