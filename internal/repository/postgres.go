package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
)

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProductRepository creates a repository backed by the given pool
func NewPostgresProductRepository(db *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

// Connect opens a pgx connection pool against the given URL and verifies it
// with a ping. NUMERIC columns are mapped to shopspring decimals.
func Connect(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Migrate creates the products table if needed and seeds the demo catalog.
// Seeding uses fixed ids with ON CONFLICT DO NOTHING, so it is idempotent.
func (r *PostgresProductRepository) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	for _, p := range SeedProducts() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO products (id, name, price, image_url, description, stock)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Name, p.Price, p.ImageURL, p.Description, p.Stock)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	return nil
}

// GetAll returns all products ordered by name
func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, image_url, description, stock
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID returns a product by its ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, image_url, description, stock
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Description, &p.Stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to query product %s: %w", id, err)
	}
	return &p, nil
}

// GetByIDs returns the products matching the given ids
func (r *PostgresProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, image_url, description, stock
		FROM products
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Create inserts a new product row
func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, price, image_url, description, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, product.ID, product.Name, product.Price, product.ImageURL, product.Description, product.Stock)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// ReserveStock applies conditional decrements for all lines inside a single
// transaction. A decrement that matches no row means the product is missing or
// short on stock; the transaction is rolled back and the failed ids returned.
func (r *PostgresProductRepository) ReserveStock(ctx context.Context, lines []models.StockLine) ([]string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var unavailable []string
	for _, line := range lines {
		tag, err := tx.Exec(ctx, `
			UPDATE products
			SET stock = stock - $2
			WHERE id = $1 AND stock >= $2
		`, line.ProductID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", line.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			unavailable = append(unavailable, line.ProductID)
		}
	}

	if len(unavailable) > 0 {
		// Rollback via the deferred call; none of the decrements persist.
		return unavailable, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock reservation: %w", err)
	}
	return nil, nil
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	// Never nil: an empty catalog must serialize as a JSON array, matching
	// the in-memory store.
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Description, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}
