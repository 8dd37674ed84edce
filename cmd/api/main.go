package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/config"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/core/server"
	authadapter "shop-admin/internal/features/auth/adapters"
	authhandler "shop-admin/internal/features/auth/handler"
	authservice "shop-admin/internal/features/auth/service"
	catalogadapter "shop-admin/internal/features/catalog/adapters"
	cataloghandler "shop-admin/internal/features/catalog/handler"
	catalogservice "shop-admin/internal/features/catalog/service"
	customeradapter "shop-admin/internal/features/customers/adapters"
	customerhandler "shop-admin/internal/features/customers/handler"
	customerservice "shop-admin/internal/features/customers/service"
	orderadapter "shop-admin/internal/features/orders/adapters"
	orderhandler "shop-admin/internal/features/orders/handler"
	orderservice "shop-admin/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Shop Admin API
// @version 1.0
// @description Admin gateway for the e-commerce backend: catalog, customers, orders and order forms.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("backend_url", cfg.Backend.URL),
		zap.Bool("proxy_enabled", cfg.Proxy.HasProxy()),
	)

	ctx := context.Background()

	// Initialize Cache
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to init Redis", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Token Store
	tokens := authadapter.NewCacheTokenStore(redisCache)
	if cfg.Backend.Token != "" {
		if err := tokens.Save(ctx, cfg.Backend.Token); err != nil {
			l.Fatal("Failed to seed backend token", zap.Error(err))
		}
	}

	// Initialize Backend Client and run Health Check
	httpClient := httpclient.NewClient(cfg.Backend.Timeout(), cfg.Proxy, tokens)
	backendClient := backend.NewClient(cfg.Backend.URL, httpClient, tokens)
	if err := backendClient.HealthCheck(ctx); err != nil {
		l.Warn("Backend health check failed", zap.Error(err))
	} else {
		l.Info("Backend connection verified")
	}

	// Initialize Auth
	authSvc := authservice.NewAuthService(authadapter.NewBackendAuthAdapter(backendClient), tokens)
	authHdl := authhandler.NewAuthHandler(authSvc)

	// Initialize Catalog
	catalogRepo := catalogadapter.NewBackendCatalogAdapter(backendClient)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogservice.NewCatalogService(catalogRepo))

	// Initialize Customers
	customerRepo := customeradapter.NewBackendCustomerAdapter(backendClient)
	customerHdl := customerhandler.NewCustomerHandler(customerservice.NewCustomerService(customerRepo))

	// Initialize Orders and Order Forms
	orderRepo := orderadapter.NewBackendOrderAdapter(backendClient)
	catalogSnapshots := orderadapter.NewCachedCatalogProvider(catalogRepo, redisCache, cfg.Forms.CatalogTTL())
	formStore := orderadapter.NewCacheFormStore(redisCache, cfg.Forms.TTL())
	orderHdl := orderhandler.NewOrderHandler(orderservice.NewOrderService(orderRepo, orderRepo))
	formHdl := orderhandler.NewFormHandler(orderservice.NewFormService(orderRepo, catalogSnapshots, formStore))

	srv := server.New(cfg)
	srv.AddHealthCheck("redis", redisCache.Ping)
	srv.AddHealthCheck("backend", backendClient.HealthCheck)

	// Register Routes
	srv.Register(authHdl, catalogHdl, customerHdl, orderHdl, formHdl)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	if err := srv.Shutdown(10 * time.Second); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
