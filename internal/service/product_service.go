package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
	"github.com/salus-templates/shopping-cart-products-api/internal/repository"
)

var (
	ErrEmptyName     = errors.New("product name must not be empty")
	ErrInvalidPrice  = errors.New("product price must be positive")
	ErrNegativeStock = errors.New("product stock must not be negative")
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates the request, assigns a fresh id and persists the
// product. Name must be non-empty, price positive and stock non-negative.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Price.Sign() <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, ErrNegativeStock
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
