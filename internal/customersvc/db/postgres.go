package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailshop/customer-services/internal/customersvc/config"
)

var DB *pgxpool.Pool

const createCustomerTableSQL = `
	CREATE TABLE IF NOT EXISTS customer (
		customer_id      BIGSERIAL PRIMARY KEY,
		name             TEXT NOT NULL,
		address          TEXT NOT NULL,
		email            TEXT NOT NULL UNIQUE,
		date_of_birth    TEXT NOT NULL,
		gender           TEXT NOT NULL CHECK (gender IN ('male', 'female', 'other')),
		age              INT  NOT NULL,
		card_holder_name TEXT NOT NULL,
		card_number      CHAR(12) NOT NULL,
		expiry_date      VARCHAR(7) NOT NULL,
		cvv              VARCHAR(4) NOT NULL,
		time_stamp       TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// Connect initializes the connection pool
func Connect(cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = int32(cfg.PoolMax)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	// Try pinging to make sure it's valid
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	DB = pool

	return pool, nil
}

// CreateCustomerTable creates the customer table if it does not exist yet.
func CreateCustomerTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createCustomerTableSQL)
	return err
}

// ClosePool is for graceful shutdown
func ClosePool() {
	if DB != nil {
		DB.Close()
	}
}
