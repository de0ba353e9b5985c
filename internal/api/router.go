package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies; field values are free text but a brief
// never needs more than this.
const maxBodyBytes = 1 << 20

func newRouter(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	if deps.RateLimiter == nil {
		// No cleanup routine here: whoever runs the limiter owns its lifetime.
		deps.RateLimiter = NewRateLimiter(DefaultRatePerMinute, DefaultBurst)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	r.Use(SecurityMiddleware)
	r.Use(InputSanitizationMiddleware)
	r.Use(deps.RateLimiter.RateLimit)

	r.Get("/healthz", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", listFieldsHandler)
		r.Get("/defaults", defaultsHandler)
		r.Post("/prompt", composeHandler)
		r.Post("/bulletize", bulletizeHandler)
	})

	return r
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
