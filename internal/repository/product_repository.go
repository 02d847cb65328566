package repository

import (
	"context"
	"errors"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	// GetAll returns every product in the catalog, ordered by name.
	GetAll(ctx context.Context) ([]models.Product, error)

	// GetByID returns a single product or ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// GetByIDs returns the products matching the given ids.
	// Unknown ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)

	// Create persists a new product. The caller assigns the id.
	Create(ctx context.Context, product *models.Product) error

	// ReserveStock atomically decrements stock for every line, or for none.
	// A line fails when its product does not exist or has insufficient stock;
	// failed ids are returned in line order and no stock is mutated.
	// Callers must coalesce duplicate product ids before calling.
	ReserveStock(ctx context.Context, lines []models.StockLine) ([]string, error)
}
