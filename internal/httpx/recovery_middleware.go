package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

func RecoveryMiddleware(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrap(w)
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(logrus.Fields{
						"request_id": RequestIDFrom(r),
						"panic":      err,
						"stack":      string(debug.Stack()),
					}).Error("panic recovered")

					if !rw.wroteHeader() {
						JSONError(rw, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
