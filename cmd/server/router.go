package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/middleware"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/pkg/api/apiconnect"
)

type routerDeps struct {
	rental     apiconnect.RentalServiceHandler
	auth       apiconnect.AuthServiceHandler
	jwtManager *auth.JWTManager
	owners     models.OwnerSet
}

// newRouter mounts the Connect services next to the health and metrics endpoints.
// Interceptors run outermost first, so logging sees the authenticated owner.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware, corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	rentalPath, rentalHandler := apiconnect.NewRentalServiceHandler(deps.rental,
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.RequireAuth(deps.jwtManager, deps.owners),
			middleware.LoggingInterceptor(),
		),
	)
	r.Mount(rentalPath, rentalHandler)

	authPath, authHandler := apiconnect.NewAuthServiceHandler(deps.auth,
		connect.WithInterceptors(
			middleware.MetricsInterceptor(),
			middleware.OptionalAuth(deps.jwtManager),
			middleware.LoggingInterceptor(),
		),
	)
	r.Mount(authPath, authHandler)

	return r
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
