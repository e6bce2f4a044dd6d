package bridge

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"gamevault/internal/httpx"
)

type HTTPHandler struct {
	bridge *Bridge
}

func NewHTTPHandler(bridge *Bridge) *HTTPHandler {
	return &HTTPHandler{bridge: bridge}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /bridge", h.ListOperations)
	mux.HandleFunc("POST /bridge/{op}", h.Invoke)
}

// ListOperations handles GET /bridge
func (h *HTTPHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, Operations(), nil)
}

// Invoke handles POST /bridge/{op}. The JSON body holds the operation
// arguments.
func (h *HTTPHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		httpx.JSONError(w, r, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json", nil)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadRequest, CodeBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.bridge.Invoke(r.Context(), r.PathValue("op"), json.RawMessage(body))
	if err != nil {
		code := ErrorCode(err)
		httpx.JSONError(w, r, statusFor(code), code, err.Error(), nil)
		return
	}
	httpx.JSONSuccess(w, r, result, nil)
}

func statusFor(code string) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound, CodeUnknownOperation:
		return http.StatusNotFound
	case CodeDuplicateEntry:
		return http.StatusConflict
	case CodeNoMatch, CodeFileNotFound:
		return http.StatusUnprocessableEntity
	case CodeUpstreamUnavailable, CodeUpstreamRejected:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
