package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS artists (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		bio TEXT NOT NULL,
		location TEXT NOT NULL,
		style TEXT NOT NULL,
		website TEXT,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_week INTEGER,
		image TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		sale_price NUMERIC(10,2),
		image TEXT NOT NULL,
		images TEXT[],
		artist_id TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'tote-bag',
		in_stock BOOLEAN NOT NULL DEFAULT TRUE,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		availability TEXT NOT NULL DEFAULT 'available'
			CHECK (availability IN ('available','coming-soon')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (session_id, product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cart_items_session ON cart_items (session_id)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		session_id TEXT,
		user_id TEXT,
		payment_intent_id TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL
			CHECK (status IN ('pending','confirmed','processing','shipped','delivered','cancelled')),
		total_amount NUMERIC(10,2) NOT NULL,
		customer_email TEXT,
		customer_name TEXT,
		shipping_address TEXT,
		tracking_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT,
		last_name TEXT,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'customer'
			CHECK (role IN ('customer','admin','supervisor')),
		profile_image_url TEXT,
		ship_line1 TEXT,
		ship_line2 TEXT,
		ship_city TEXT,
		ship_state TEXT,
		ship_postal_code TEXT,
		ship_country TEXT,
		password_hash TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		subscribed BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema; every statement is idempotent so it runs on
// each startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
