package recurring

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmcardoso/penny/internal/recurring"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/run", h.run)
}

// run triggers a processing cycle on demand, same entry point the daily
// scheduler calls.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ProcessDue(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
