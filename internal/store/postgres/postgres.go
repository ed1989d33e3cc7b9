package postgres

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	// Register database postgres
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Register golang migrate source file
	_ "github.com/golang-migrate/migrate/v4/source/file"

	// Register pgx driver for database/sql
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// Client is a wrapper over sqlx for the record store.
type Client struct {
	db *sqlx.DB
}

// NewClient initializes the database connection.
func NewClient(cfg Config) (*Client, error) {
	db, err := sqlx.Connect("pgx", cfg.ConnectionURL().String())
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}
	return &Client{db: db}, nil
}

func (c *Client) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return c.db.QueryxContext(ctx, query, args...)
}

func (c *Client) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.SelectContext(ctx, dest, query, args...)
}

func (c *Client) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.GetContext(ctx, dest, query, args...)
}

// Migrate applies pending schema migrations from cfg.MigrationsPath. The
// migration files belong to the deployment, not this module; entity tables
// are owned by whoever declares the entities.
func (c *Client) Migrate(cfg Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.ConnectionURL().String())
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
