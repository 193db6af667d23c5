// Package httpapi assembles the HTTP surface of the server: the Connect
// service, CSV export, health and metrics endpoints.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// RPCPath and RPC are the Connect service mount point and handler.
	RPCPath string
	RPC     http.Handler

	Export   *ExportHandler
	Gatherer prometheus.Gatherer

	AllowedOrigins []string
}

func New(opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms", "X-Request-Id"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms", "X-Request-Id"},
	}))

	router.Mount(opts.RPCPath, opts.RPC)
	router.Route("/export", opts.Export.Routes)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	return router
}

// requestLogger logs all incoming requests
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
