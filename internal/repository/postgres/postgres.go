package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/config"
	"github.com/sportshub/storefront/internal/repository"
)

// NewConnection opens a database connection. When the host is
// localhost and the first attempt fails, it retries once against
// 127.0.0.1: some setups resolve localhost to IPv6 only.
func NewConnection(cfg config.DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := open(cfg)
	if err != nil && strings.Contains(cfg.Host, "localhost") {
		logger.Warn("Database connection failed, retrying with 127.0.0.1", zap.Error(err))
		retryCfg := cfg
		retryCfg.Host = strings.Replace(cfg.Host, "localhost", "127.0.0.1", 1)
		db, err = open(retryCfg)
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}

func open(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewRepositories creates all postgres-backed repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Product:  NewProductRepository(db, logger),
		Category: NewCategoryRepository(db, logger),
		User:     NewUserRepository(db, logger),
	}
}

// EnsureSchema creates the tables if they do not exist
func EnsureSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			slug        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url   TEXT NOT NULL DEFAULT '',
			type        TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			category_id    TEXT NOT NULL,
			name           TEXT NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			price          DOUBLE PRECISION NOT NULL,
			original_price DOUBLE PRECISION,
			image_url      TEXT NOT NULL DEFAULT '',
			rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
			review_count   INTEGER NOT NULL DEFAULT 0,
			stock          INTEGER NOT NULL DEFAULT 0,
			type           TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS users (
			id             TEXT PRIMARY KEY,
			email          TEXT NOT NULL UNIQUE,
			password_hash  TEXT NOT NULL,
			full_name      TEXT NOT NULL,
			avatar_url     TEXT,
			theme          TEXT NOT NULL DEFAULT 'light',
			loyalty_points INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
