package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/areeba-ilyas/E-commerce-App/internal/cart"
	"github.com/areeba-ilyas/E-commerce-App/internal/catalog"
	"github.com/areeba-ilyas/E-commerce-App/internal/config"
	"github.com/areeba-ilyas/E-commerce-App/internal/storefront"
	"github.com/areeba-ilyas/E-commerce-App/pkg/kit"
)

func main() {
	service := "shopeasy"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	cat, store, err := buildStores(cfg)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", cat.Len()))

	s := &storefront.Server{
		Catalog:  cat,
		Carts:    storefront.NewCarts(store, log),
		Sessions: storefront.NewSessionMaker(cfg.SessionSecret),
		Checkout: cart.Config{ShippingFee: cfg.ShippingFee, TaxRate: cfg.TaxRate},
		PageSize: cfg.PageSize,
		Log:      log,
		Ready:    store.Ping,
	}

	reg := prometheus.NewRegistry()
	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsToken != "",
		MetricsToken:   cfg.MetricsToken,
		RateLimiter:    kit.NewIPRateLimiter(cfg.RateLimit, cfg.RateWindow),
	})

	if err := kit.RunHTTPServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStores picks the backing stores: Postgres when a DSN is configured,
// otherwise the seed catalog with file-backed carts. Either way the catalog
// is fully in memory before the first query.
func buildStores(cfg config.Config) (*catalog.Catalog, cart.Store, error) {
	if cfg.PostgresDSN == "" {
		store, err := cart.NewFileStore(cfg.StateDir)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewSeeded(), store, nil
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := catalog.LoadProducts(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(products), cart.NewPostgresStore(db), nil
}
