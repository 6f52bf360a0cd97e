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
	"github.com/a-h/interectors/orchestrator"
	"github.com/a-h/respond"
)

type Answerer interface {
	Answer(ctx context.Context, url, question string) (orchestrator.Answer, error)
}

type Recorder interface {
	InteractionPut(ctx context.Context, i db.Interaction) (id int64, err error)
}

func New(log *slog.Logger, answerer Answerer, recorder Recorder) Handler {
	return Handler{
		log:      log,
		answerer: answerer,
		recorder: recorder,
		now:      time.Now,
	}
}

type Handler struct {
	log      *slog.Logger
	answerer Answerer
	recorder Recorder
	now      func() time.Time
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := auth.User(r)

	var req models.QAPostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	if req.URL == "" || req.Question == "" {
		respond.WithError(w, "url and question are required", http.StatusBadRequest)
		return
	}

	h.log.Info("answering question", slog.String("user", user), slog.String("url", req.URL))
	a, err := h.answerer.Answer(r.Context(), req.URL, req.Question)
	if err != nil {
		handlers.WriteError(h.log, w, err)
		return
	}
	h.log.Debug("answered question",
		slog.String("url", req.URL),
		slog.Float64("contentQuestionSimilarity", a.Features.ContentQuestionSimilarity),
		slog.Float64("contentAnswerSimilarity", a.Features.ContentAnswerSimilarity),
		slog.Float64("questionAnswerSimilarity", a.Features.QuestionAnswerSimilarity))

	if _, err = h.recorder.InteractionPut(r.Context(), db.Interaction{
		User:      user,
		Kind:      string(models.InteractionKindQA),
		URL:       req.URL,
		Question:  req.Question,
		Response:  a.Text,
		CreatedAt: h.now(),
	}); err != nil {
		h.log.Error("failed to record interaction", slog.Any("error", err))
	}

	respond.WithJSON(w, models.QAPostResponse{
		Answer:      a.Text,
		Features:    a.Features,
		Probability: a.Probability,
	}, http.StatusOK)
}
