package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/makelifebetter/storefront-service/internal/application/sessions"
	"github.com/makelifebetter/storefront-service/internal/config"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/server"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/scheduler"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	flag.Parse()

	log := logger.NewLogger()
	log.Info("Starting Storefront Service")

	cfg, configErr := config.LoadConfig(*configPath)
	if configErr != nil {
		log.Fatal("Failed to load configuration", "error", configErr)
	}

	db, dbErr := postgres.NewConnection(cfg.Database)
	if dbErr != nil {
		log.Fatal("Failed to connect to database", "error", dbErr)
	}
	defer db.Close()

	if migrationErr := postgres.RunMigrations(cfg.Database); migrationErr != nil {
		log.Fatal("Failed to run migrations", "error", migrationErr)
	}

	redisConn, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisConn.Close()

	dbMetricsCollector := monitoring.NewDBMetricsCollector(db.GetDB())
	dbMetricsCollector.StartCollecting(context.Background(), 30*time.Second)

	clk := clock.NewRealClock()
	sessionManager := sessions.NewManager(clk, cfg.Checkout.SessionTTL())
	sessionReaper := scheduler.NewSessionReaper(sessionManager, log, cfg.Checkout.ReapInterval())

	httpServer := server.NewServer(cfg, db, redisConn, sessionManager, clk, log)

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	go sessionReaper.Start(serverCtx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigChan
		shutdownCtx, shutdownCancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer shutdownCancel()

		log.Info("Shutting down server...")
		sessionReaper.Stop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", "error", err)
		}

		serverStopCtx()
	}()

	log.Info("Server starting", "address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed", "error", err)
	}

	<-serverCtx.Done()
	log.Info("Server stopped")
}
