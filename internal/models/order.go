package models

import "github.com/shopspring/decimal"

// OrderItemRequest represents a single line item in an order request
type OrderItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest represents an incoming order.
// TotalAmount and OrderDate are client-supplied and accepted as-is.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	DeliveryAddress string             `json:"deliveryAddress"`
	OrderDate       string             `json:"orderDate"`
}

// PlaceOrderResponse is the outcome of an order placement.
// OrderID is set only on success, OutOfStockItems only on failure.
type PlaceOrderResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	OrderID         string   `json:"orderId,omitempty"`
	OutOfStockItems []string `json:"outOfStockItems,omitempty"`
}

// StockLine is a coalesced demand against a single product
type StockLine struct {
	ProductID string
	Quantity  int
}
