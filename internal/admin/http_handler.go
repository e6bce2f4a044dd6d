package admin

import (
	"net/http"

	"gamevault/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Stats handles GET /admin/stats
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, st, nil)
}
