package http

import (
	"net/http"
	"strconv"

	"flowfinance/service"
)

const defaultHistoryLimit = 20

type HistoryHandler struct {
	service *service.HistoryService
}

func NewHistoryHandler(service *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// ListCalculations serves GET /api/calculations?limit=N.
func (h *HistoryHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorStatus(w, http.StatusBadRequest, "límite inválido", "validation")
			return
		}
		limit = n
	}

	calcs, err := h.service.Recent(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calcs)
}
