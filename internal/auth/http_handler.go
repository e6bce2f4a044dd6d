package auth

import (
	"errors"
	"net/http"
	"strings"

	"gamevault/internal/httpx"
	"gamevault/internal/license"
	"gamevault/internal/platform/crypto"
	"gamevault/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type RegisterReq struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
	LicenseKey string `json:"license_key" validate:"required"`
}

// Register handles POST /auth/register
// @Summary Register with a license key
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.LicenseKey = strings.TrimSpace(req.LicenseKey)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	u, err := h.service.Register(r.Context(), req.Username, req.Password, req.LicenseKey)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			httpx.JSONError(w, r, http.StatusConflict, "USERNAME_TAKEN", "Username already taken", nil)
		case errors.Is(err, license.ErrInvalidKey):
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_LICENSE", "Invalid license key", nil)
		case errors.Is(err, license.ErrInactive):
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_LICENSE", "License key is not active", nil)
		case errors.Is(err, license.ErrUsed):
			httpx.JSONError(w, r, http.StatusConflict, "LICENSE_USED", "License key already used", nil)
		case errors.Is(err, crypto.ErrPasswordTooShort):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, map[string]any{
		"user":    u,
		"message": "Registration successful. Your account is awaiting approval.",
	})
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	res, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
		case errors.Is(err, ErrPendingApproval):
			httpx.JSONError(w, r, http.StatusForbidden, "PENDING_APPROVAL", "Account pending approval", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, res, nil)
}
