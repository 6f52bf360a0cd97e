package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/interectors/auth"
	"github.com/a-h/interectors/db"
	"github.com/a-h/interectors/models"
	"github.com/a-h/respond"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Lister interface {
	InteractionList(ctx context.Context, args db.InteractionListArgs) ([]db.Interaction, error)
}

func New(log *slog.Logger, lister Lister) Handler {
	return Handler{
		log:    log,
		lister: lister,
	}
}

type Handler struct {
	log    *slog.Logger
	lister Lister
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := auth.User(r)

	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		var err error
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 1 {
			respond.WithError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
	}
	limit = min(limit, MaxLimit)

	interactions, err := h.lister.InteractionList(r.Context(), db.InteractionListArgs{
		User:  user,
		Limit: limit,
	})
	if err != nil {
		h.log.Error("failed to list interactions", slog.Any("error", err))
		respond.WithError(w, "failed to list interactions", http.StatusInternalServerError)
		return
	}

	resp := models.HistoryGetResponse{
		Interactions: make([]models.Interaction, len(interactions)),
	}
	for i, interaction := range interactions {
		resp.Interactions[i] = models.Interaction{
			ID:        interaction.ID,
			Kind:      models.InteractionKind(interaction.Kind),
			URL:       interaction.URL,
			Question:  interaction.Question,
			Response:  interaction.Response,
			CreatedAt: interaction.CreatedAt,
		}
	}
	respond.WithJSON(w, resp, http.StatusOK)
}
