package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/makelifebetter/storefront-service/internal/application/sessions"
	"github.com/makelifebetter/storefront-service/internal/application/use_cases"
	"github.com/makelifebetter/storefront-service/internal/config"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/handlers"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type Server struct {
	server          *http.Server
	logger          *logger.Logger
	healthHandler   *handlers.HealthHandler
	catalogHandler  *handlers.CatalogHandler
	cartHandler     *handlers.CartHandler
	checkoutHandler *handlers.CheckoutHandler
	ordersHandler   *handlers.OrdersHandler
	adminHandler    *handlers.AdminHandler
}

func NewServer(
	cfg *config.Config,
	db *postgres.Connection,
	redisConn *redis.Connection,
	sessionManager *sessions.Manager,
	clk clock.Clock,
	log *logger.Logger,
) *Server {
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	userRepo := postgres.NewUserRepository(db)

	cartStore := redis.NewCartStore(redisConn, log)

	placeOrder := use_cases.NewPlaceOrderUseCase(orderRepo, userRepo, clk, log)

	healthHandler := handlers.NewHealthHandler(db.GetDB(), redisConn.GetClient(), log)
	catalogHandler := handlers.NewCatalogHandler(productRepo, log)
	cartHandler := handlers.NewCartHandler(cartStore, productRepo, log)
	checkoutHandler := handlers.NewCheckoutHandler(sessionManager, cartStore, userRepo, placeOrder, log)
	ordersHandler := handlers.NewOrdersHandler(orderRepo, userRepo, log)
	adminHandler := handlers.NewAdminHandler(productRepo, orderRepo, userRepo, clk, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server:          server,
		logger:          log,
		healthHandler:   healthHandler,
		catalogHandler:  catalogHandler,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
		ordersHandler:   ordersHandler,
		adminHandler:    adminHandler,
	}
}

func (s *Server) ListenAndServe() error {
	s.server.Handler = s.setupRoutes()

	s.logger.Info("Starting HTTP server", "address", s.server.Addr)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
