package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
)

// InMemoryProductRepository implements ProductRepository with mutex-guarded
// in-memory storage. Used by tests and as the backend when no database is
// configured.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates an in-memory repository seeded with the
// demo catalog.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := make(map[string]models.Product)
	for _, p := range SeedProducts() {
		products[p.ID] = p
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// NewEmptyInMemoryProductRepository creates an in-memory repository with no
// seed data.
func NewEmptyInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products ordered by name
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetByIDs returns the products matching the given ids, skipping unknown ones
func (r *InMemoryProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if product, exists := r.products[id]; exists {
			products = append(products, product)
		}
	}
	return products, nil
}

// Create stores a new product
func (r *InMemoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// ReserveStock checks and decrements stock for all lines under a single lock,
// so concurrent reservations against the same product serialize and stock can
// never go negative.
func (r *InMemoryProductRepository) ReserveStock(ctx context.Context, lines []models.StockLine) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var unavailable []string
	for _, line := range lines {
		product, exists := r.products[line.ProductID]
		if !exists || product.Stock < line.Quantity {
			unavailable = append(unavailable, line.ProductID)
		}
	}
	if len(unavailable) > 0 {
		return unavailable, nil
	}

	for _, line := range lines {
		product := r.products[line.ProductID]
		product.Stock -= line.Quantity
		r.products[line.ProductID] = product
	}
	return nil, nil
}
