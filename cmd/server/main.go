// Package main is the entry point for the storefront API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/domain/auth"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/defaults"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/quotation"
	"storefront/internal/domain/totals"
	v1 "storefront/internal/infrastructure/http/v1"
	"storefront/internal/infrastructure/storage/postgres"
	"storefront/internal/infrastructure/storage/postgres/auth_repo"
	"storefront/internal/infrastructure/storage/postgres/catalog_repo"
	"storefront/internal/infrastructure/storage/postgres/document_repo"
	"storefront/internal/infrastructure/storage/postgres/settings_repo"
	"storefront/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting storefront server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	itemRepo := catalog_repo.NewItemRepo(txManager)
	itemGroupRepo := catalog_repo.NewItemGroupRepo(txManager)
	leadRepo := catalog_repo.NewLeadRepo(txManager)
	companyRepo := catalog_repo.NewCompanyRepo(txManager)
	quotationRepo := document_repo.NewQuotationRepo(txManager)
	settingsRepo := settings_repo.NewSettingsRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)

	// --- Services ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(userRepo, jwtService)

	customerService := customer.NewService(customerRepo)
	itemService := item.NewService(itemRepo)
	defaultsService := defaults.NewService(settingsRepo)
	pricingService := pricing.NewService(itemRepo, defaultsService)

	totalsEngine := totals.NewEngine(itemRepo, pricingService, totals.DefaultCharges())

	quotationService := quotation.NewService(quotation.Config{
		Repo:      quotationRepo,
		Customers: customerService,
		Defaults:  defaultsService,
		Engine:    totalsEngine,
		Users:     authService,
		TxManager: txManager,
	})

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:           log,
		JWTValidator:     jwtService,
		AuthService:      authService,
		QuotationService: quotationService,
		CustomerService:  customerService,
		ItemService:      itemService,
		PricingService:   pricingService,
		DefaultsService:  defaultsService,
		ItemGroupRepo:    itemGroupRepo,
		LeadRepo:         leadRepo,
		CompanyRepo:      companyRepo,
		DB:               pool,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
