package game

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamevault/internal/httpx"
	"gamevault/internal/platform/steam"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func parseQuery(r *http.Request) (Query, int, int) {
	query := r.URL.Query()
	params := Query{
		Category: query.Get("category"),
		Q:        strings.TrimSpace(query.Get("q")),
	}
	if featured, err := strconv.ParseBool(query.Get("featured")); err == nil {
		params.Featured = &featured
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize
	return params, page, pageSize
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	params, page, pageSize := parseQuery(r)
	params.IncludeInactive = includeInactive

	games, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, games, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// List handles GET /games
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// AdminList handles GET /admin/games
func (h *HTTPHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// Get handles GET /games/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.Get(r.Context(), r.PathValue("id"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, g, nil)
}

type CreateReq struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	DownloadURL string   `json:"download_url" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required,max=50"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	IsActive    *bool    `json:"is_active"`
	Screenshots []string `json:"screenshots"`
}

// Create handles POST /admin/games
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	g := &Game{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DownloadURL: req.DownloadURL,
		Category:    req.Category,
		Tags:        req.Tags,
		Featured:    req.Featured,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Screenshots: req.Screenshots,
	}
	if err := h.service.Create(r.Context(), g); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, g)
}

// Update handles PATCH /admin/games/{id}
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

	g, err := h.service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, g, nil)
}

// Delete handles DELETE /admin/games/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

type ImportReq struct {
	AppID int64 `json:"app_id" validate:"required,gt=0"`
}

// ImportFromSteam handles POST /admin/games/import-steam
func (h *HTTPHandler) ImportFromSteam(w http.ResponseWriter, r *http.Request) {
	var req ImportReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	g, err := h.service.ImportFromSteam(r.Context(), req.AppID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, g)
}

// SearchSteam handles GET /steam/search?query=
func (h *HTTPHandler) SearchSteam(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "query is required", []httpx.ErrorDetail{
			{Field: "query", Message: "is required"},
		})
		return
	}

	results, err := h.service.SearchSteam(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, results, nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not found", nil)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Game already imported", nil)
	case errors.Is(err, steam.ErrRejected):
		httpx.JSONError(w, r, http.StatusNotFound, "STEAM_APP_NOT_FOUND", "Steam app not found", nil)
	case errors.Is(err, steam.ErrUnavailable):
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Steam is unavailable", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
