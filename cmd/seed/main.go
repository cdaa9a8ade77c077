// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"storefront/internal/core/id"
	"storefront/internal/core/types"
	"storefront/internal/domain/auth"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/infrastructure/storage/postgres"
	"storefront/internal/infrastructure/storage/postgres/auth_repo"
	"storefront/internal/infrastructure/storage/postgres/catalog_repo"
	"storefront/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)

	userID, err := seedStorefrontUser(ctx, pool, txm, log)
	if err != nil {
		log.Fatalw("failed to seed user", "error", err)
	}

	if err := seedSettings(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed settings", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, txm, log, userID); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedStorefrontUser(ctx context.Context, pool *postgres.Pool, txm *postgres.TxManager, log *logger.Logger) (id.ID, error) {
	email := os.Getenv("STOREFRONT_USER_EMAIL")
	if email == "" {
		email = "buyer@example.com"
	}
	password := os.Getenv("STOREFRONT_USER_PASSWORD")
	if password == "" {
		password = "Buyer123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		log.Infow("user already exists", "email", email)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return id.Nil(), err
	}

	now := time.Now().UTC()
	user := &auth.User{
		ID:           id.New(),
		Email:        email,
		FullName:     "Demo Buyer",
		PasswordHash: hash,
		Roles:        []string{"Customer"},
		CreatedAt:    now,
		ModifiedAt:   now,
	}

	if err := auth_repo.NewUserRepo(txm).Create(ctx, user); err != nil {
		return id.Nil(), err
	}

	log.Infow("user created", "email", email)
	return user.ID, nil
}

func seedSettings(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO global_defaults (default_currency, default_company)
		VALUES ('INR', 'DEMO')
		ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO storefront_settings (default_price_list, default_warehouse)
		VALUES ('Standard Selling', 'Stores')
		ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	log.Info("settings seeded")
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, txm *postgres.TxManager, log *logger.Logger, userID id.ID) error {
	customers := catalog_repo.NewCustomerRepo(txm)
	items := catalog_repo.NewItemRepo(txm)

	cust := customer.New("CUST-00001", "Demo Buyer Pvt Ltd")
	cust.MobileNo = "+91 98765 43210"
	cust.UserID = userID.String()
	if err := customers.Create(ctx, cust); err != nil {
		log.Warnw("customer not created", "error", err)
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, code, name, company_name, abbr, default_currency, country, created_at, modified_at)
		VALUES ($1, 'DEMO', 'Demo Traders', 'Demo Traders', 'DT', 'INR', 'India', now(), now())
		ON CONFLICT (code) DO NOTHING`, id.New())
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO item_groups (id, code, name, show_in_mobile, created_at, modified_at)
		VALUES ($1, 'CONSUMABLES', 'Consumables', true, now(), now())
		ON CONFLICT (code) DO NOTHING`, id.New())
	if err != nil {
		return err
	}

	demoItems := []struct {
		code, name string
		rate       string
	}{
		{"ITEM-00001", "Copier Paper A4", "240"},
		{"ITEM-00002", "Ballpoint Pen Blue", "10"},
		{"ITEM-00003", "Stapler No. 10", "85"},
	}
	for _, d := range demoItems {
		it := item.New(d.code, d.name, "CONSUMABLES")
		it.StockUOM = "Nos"
		if err := items.Create(ctx, it); err != nil {
			log.Warnw("item not created", "item", d.code, "error", err)
			continue
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO item_prices (item_code, price_list, rate)
			VALUES ($1, 'Standard Selling', $2)
			ON CONFLICT (item_code, price_list) DO NOTHING`,
			d.code, types.MustMoney(d.rate))
		if err != nil {
			return err
		}
	}

	log.Info("demo data seeded")
	return nil
}
