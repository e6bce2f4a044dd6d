package httpx

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// Inbound ids are reused only when they look like short tokens.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestIDMiddleware tags each request with an id, reusing a well-formed
// X-Request-Id from the caller or minting a UUID otherwise.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !requestIDPattern.MatchString(requestID) {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), requestID)))
	})
}
