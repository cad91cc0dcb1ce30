package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tudu/shared/constant"
	"tudu/transport/http/response"
)

type Status struct {
	Status string `json:"status"`
}

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Health)
}

// Health reports that the process is serving requests.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} health.Status
// @Router / [get]
func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{Status: constant.ResponseStatusOK})
}
