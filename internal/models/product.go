package models

import "github.com/shopspring/decimal"

func init() {
	// Prices are JSON numbers on the wire, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item available for purchase
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

// CreateProductRequest represents the body of POST /products
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}
