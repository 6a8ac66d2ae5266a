package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"menu-engine/internal/config"
	"menu-engine/internal/database"
	"menu-engine/internal/generator"
	"menu-engine/internal/logger"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/observability"
	"menu-engine/internal/server"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing := observability.InitOTel(context.Background(), cfg, log)

	// 2. Database
	db, err := database.NewDB(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer db.Close()

	// 3. Services
	deliverer, err := notification.NewDelivererFromConfig(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize notification channel", "error", err)
	}
	runner := generator.NewRunnerFromDB(db.SQL, deliverer, log)

	router := server.NewRouter(server.RouterConfig{
		CronSecret:         cfg.CronSecret,
		Production:         cfg.IsProduction(),
		AllowManualTrigger: cfg.AllowManualTrigger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceName:        observability.ServiceName,
		Log:                log,
		GenerateHandler:    server.NewGenerateHandler(runner, log),
		RunsHandler:        server.NewRunsHandler(metrics.NewStore(db.SQL)),
		HealthHandler:      server.NewHealthHandler(db.SQL, filepath.Dir(cfg.DatabasePath)),
	})

	// 4. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Menu server listening", "port", cfg.Port, "channel", deliverer.Channel())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(ctxShutdown); err != nil {
		log.Warn("Tracer shutdown failed", "error", err)
	}

	log.Info("Server exiting")
}
