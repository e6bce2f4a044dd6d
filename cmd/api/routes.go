package main

import (
	"context"
	"net/http"
	"time"

	"gamevault/internal/admin"
	"gamevault/internal/auth"
	"gamevault/internal/game"
	"gamevault/internal/httpx"
	"gamevault/internal/license"
	"gamevault/internal/platform/metrics"
	"gamevault/internal/user"
)

type handlers struct {
	auth    *auth.HTTPHandler
	users   *user.HTTPHandler
	games   *game.HTTPHandler
	license *license.HTTPHandler
	admin   *admin.HTTPHandler
}

// pinger reports database readiness.
type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(h handlers, secret string, db pinger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	authed := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.AuthMiddleware(secret))
	}
	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.AuthMiddleware(secret), httpx.RequireAdmin)
	}

	mux.HandleFunc("POST /auth/register", h.auth.Register)
	mux.HandleFunc("POST /auth/login", h.auth.Login)
	mux.Handle("GET /me", authed(h.users.GetCurrentUser))

	mux.HandleFunc("GET /games", h.games.List)
	mux.HandleFunc("GET /games/{id}", h.games.Get)

	mux.Handle("GET /admin/stats", adminOnly(h.admin.Stats))
	mux.Handle("GET /admin/users", adminOnly(h.users.List))
	mux.Handle("PATCH /admin/users/{id}", adminOnly(h.users.Update))
	mux.Handle("GET /admin/licenses", adminOnly(h.license.List))
	mux.Handle("POST /admin/licenses", adminOnly(h.license.Create))
	mux.Handle("PATCH /admin/licenses/{id}", adminOnly(h.license.Update))
	mux.Handle("GET /admin/games", adminOnly(h.games.AdminList))
	mux.Handle("POST /admin/games", adminOnly(h.games.Create))
	mux.Handle("POST /admin/games/import-steam", adminOnly(h.games.ImportFromSteam))
	mux.Handle("PATCH /admin/games/{id}", adminOnly(h.games.Update))
	mux.Handle("DELETE /admin/games/{id}", adminOnly(h.games.Delete))
	mux.Handle("GET /steam/search", adminOnly(h.games.SearchSteam))

	return mux
}
