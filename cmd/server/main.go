package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/expensetracker/internal/config"
	"github.com/mmynk/expensetracker/internal/httpapi"
	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/internal/service"
	"github.com/mmynk/expensetracker/internal/storage/sqlite"
	"github.com/mmynk/expensetracker/internal/tracker"
	"github.com/mmynk/expensetracker/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage; the schema must exist before serving.
	store, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		return err
	}
	slog.Info("Storage initialized", "database", cfg.DB.Path)

	trk := tracker.New(store, tracker.WithEarnersOnly(cfg.Tracker.EarnersOnly))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	rpcPath, rpcHandler := service.NewTrackerServiceHandler(
		service.NewTrackerService(trk),
		connect.WithInterceptors(middleware.LoggingInterceptor(), metrics.Interceptor()),
	)

	router := httpapi.New(httpapi.Options{
		RPCPath:        rpcPath,
		RPC:            rpcHandler,
		Export:         httpapi.NewExportHandler(trk),
		Gatherer:       reg,
		AllowedOrigins: cfg.App.CORSOrigins,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(router, &http2.Server{}),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server starting", "address", server.Addr, "earners_only", cfg.Tracker.EarnersOnly)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
