package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"investadvisor/internal/api"
	"investadvisor/internal/config"
	"investadvisor/internal/logging"
	"investadvisor/internal/metrics"
	"investadvisor/pkg/advisor"
)

func main() {
	var port int
	var host string
	var dataDir string
	var webDir string

	flag.IntVar(&port, "port", 0, "Port to run the server on (overrides env)")
	flag.StringVar(&host, "host", "", "Host to bind the server to (overrides env)")
	flag.StringVar(&dataDir, "data-dir", "", "Directory for logs and the audit database (overrides env)")
	flag.StringVar(&webDir, "web-dir", "", "Directory for dashboard static files (optional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logDir := filepath.Join(cfg.DataDir, "logs")
	logger, writer, err := logging.NewLogger(logDir, cfg.Level)
	if err != nil {
		slog.Error("failed to initialize logger", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close log writer", "err", err)
		}
	}()

	core, err := advisor.OpenWithOptions(advisor.Options{
		AI:          cfg.AI,
		AuditDBPath: filepath.Join(cfg.DataDir, "advisor.db"),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to initialize core", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := core.Close(); err != nil {
			logger.Error("failed to close core", "err", err)
		}
	}()

	collector, err := metrics.NewCollector()
	if err != nil {
		logger.Error("failed to initialize metrics", "err", err)
		os.Exit(1)
	}

	handler := api.NewRouter(core, logger, collector)
	if webDir != "" {
		logger.Info("serving dashboard", "web_dir", webDir)
		handler = api.WithSPA(handler, webDir)
	}
	handler = middleware.Compress(5)(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("server starting", "addr", addr, "ai_enabled", core.AIEnabled())
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
}
