package user

import (
	"errors"
	"net/http"

	"gamevault/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetCurrentUser handles GET /me
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, u, nil)
}

// List handles GET /admin/users
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, users, map[string]any{"total": len(users)})
}

// Update handles PATCH /admin/users/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(patch); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	id := r.PathValue("id")
	if id == httpx.UserIDFrom(r) && patch.IsAdmin != nil && !*patch.IsAdmin {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Cannot remove your own admin role", nil)
		return
	}

	u, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, u, nil)
}
