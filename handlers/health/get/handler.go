package get

import (
	"net/http"

	"github.com/a-h/interectors"
	"github.com/a-h/interectors/models"
	"github.com/a-h/respond"
)

// Health reports that the server is running.
func Health(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, models.HealthGetResponse{Status: "healthy"}, http.StatusOK)
}

// Root describes the API.
func Root(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, models.RootGetResponse{
		Message: "Interectors API is running",
		Version: interectors.Version,
	}, http.StatusOK)
}
