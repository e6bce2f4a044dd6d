package license

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

type createReq struct {
	Key string `json:"key" validate:"omitempty,min=4,max=64"`
}

type updateReq struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// List handles GET /admin/licenses
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, licenses, map[string]any{"total": len(licenses)})
}

// Create handles POST /admin/licenses
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	l, err := h.service.Create(r.Context(), req.Key)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "License key already exists", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, l)
}

// Update handles PATCH /admin/licenses/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	l, err := h.service.SetActive(r.Context(), r.PathValue("id"), *req.IsActive)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "License not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}
