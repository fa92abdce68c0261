package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/maisonluxe/storefront/api/routes"
	"github.com/maisonluxe/storefront/internal/cart"
	"github.com/maisonluxe/storefront/internal/catalog"
	"github.com/maisonluxe/storefront/internal/shop"
	"github.com/maisonluxe/storefront/pkg/catalogapi"
	"github.com/maisonluxe/storefront/pkg/config"
	"github.com/maisonluxe/storefront/pkg/logger"
	"github.com/maisonluxe/storefront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	storeMetrics := metrics.NewStoreMetrics(registry)

	client := catalogapi.NewClient(
		catalogapi.WithBaseURL(cfg.Catalog.BaseURL),
		catalogapi.WithTimeout(cfg.Catalog.Timeout),
	)

	svc, err := shop.NewService(shop.ServiceParams{
		Client:  client,
		Catalog: catalog.NewStore(),
		Cart:    cart.NewStore(),
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create shop service", err)
		os.Exit(1)
	}

	// Warm the catalog on boot; consumers observe the loading state until
	// the fetches resolve.
	svc.RequestProducts(context.Background())
	svc.RequestCategories(context.Background())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":         cfg.App.Env,
		"addr":        addr,
		"catalog_url": cfg.Catalog.BaseURL,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, svc, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}
