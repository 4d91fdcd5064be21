package http

import (
	"database/sql"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"timeledger/internal/delivery/http/controllers"
	"timeledger/internal/delivery/http/middleware"
	"timeledger/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// A nil verifier leaves the API open; authController may also be nil then.
func NewRouter(tracking *controllers.TrackingController, auth *controllers.AuthController, verifier domain.TokenVerifier, db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()
	protect := middleware.RequireAuth(verifier)

	// Entries
	mux.HandleFunc("POST /api/v1/entries", protect(tracking.Start))
	mux.HandleFunc("GET /api/v1/entries", protect(tracking.List))
	mux.HandleFunc("GET /api/v1/entries/current", protect(tracking.Current))
	mux.HandleFunc("GET /api/v1/entries/log", protect(tracking.Log))
	mux.HandleFunc("GET /api/v1/entries/range", protect(tracking.Range))
	mux.HandleFunc("POST /api/v1/entries/{entryID}/stop", protect(tracking.Stop))
	mux.HandleFunc("PATCH /api/v1/entries/{entryID}", protect(tracking.Update))
	mux.HandleFunc("DELETE /api/v1/entries/{entryID}", protect(tracking.Delete))

	// Stats
	mux.HandleFunc("GET /api/v1/stats/frequent", protect(tracking.Frequent))
	mux.HandleFunc("GET /api/v1/stats/day", protect(tracking.Day))
	mux.HandleFunc("GET /api/v1/stats/week", protect(tracking.Week))

	// Auth
	if auth != nil {
		mux.HandleFunc("POST /api/v1/auth/login", auth.Login)
	}

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "db unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
