package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spotlight/spotlight/config"
	"spotlight/spotlight/routes"
	"spotlight/spotlight/sources/psql"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	if cfg.AdminAPIKey == "" {
		logging.AppLogger.Warn("ADMIN_API_KEY is not set; every API request will fail with a configuration error")
	}

	// The store connects lazily; an early ping only reports reachability.
	db := psql.NewDatabase(cfg)
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Ping(pingCtx); err != nil {
		logging.ErrorLogger.Error("database not reachable at startup", zap.Error(err))
	}
	cancel()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("admin server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
