package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
	"github.com/salus-templates/shopping-cart-products-api/internal/repository"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// OrderIDPrefix prefixes every generated order identifier
const OrderIDPrefix = "ORD"

const (
	orderPlacedMessage = "Order placed successfully!"
	orderFailedMessage = "Order failed: Some items are out of stock or requested quantity exceeds available stock."
)

// OrderService handles order placement against the product catalog
type OrderService struct {
	repo  repository.ProductRepository
	log   *slog.Logger
	delay time.Duration
}

// NewOrderService creates a new order service. A non-zero delay is applied
// before each placement to simulate upstream latency.
func NewOrderService(repo repository.ProductRepository, log *slog.Logger, delay time.Duration) *OrderService {
	return &OrderService{
		repo:  repo,
		log:   log,
		delay: delay,
	}
}

// PlaceOrder decides acceptance of an order and applies its stock effects.
// The order is all-or-nothing: if any line references a missing product or
// asks for more than the available stock, the whole order fails and no stock
// is mutated. Duplicate lines for the same product are coalesced before
// validation, so cumulative demand is checked once.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	// A vacuous order is accepted without touching the catalog.
	if len(req.Items) == 0 {
		orderID := generateOrderID()
		s.log.Info("order placed successfully",
			"order_id", orderID,
			"delivery_address", req.DeliveryAddress,
			"items_count", 0,
		)
		return &models.PlaceOrderResponse{
			Success: true,
			Message: orderPlacedMessage,
			OrderID: orderID,
		}, nil
	}

	lines, requested, itemOrder, malformed := coalesceItems(req.Items)

	failed := make(map[string]bool, len(malformed))
	for id := range malformed {
		failed[id] = true
	}

	if len(malformed) > 0 {
		// A malformed id can never match a product, so the order already
		// failed. Check the remaining lines read-only against a snapshot so
		// the response still lists every failing line, without reserving
		// stock for an order that cannot commit.
		available := make(map[string]int, len(lines))
		if len(lines) > 0 {
			ids := make([]string, 0, len(lines))
			for _, line := range lines {
				ids = append(ids, line.ProductID)
			}
			products, err := s.repo.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			for _, p := range products {
				available[p.ID] = p.Stock
			}
		}
		for _, line := range lines {
			stock, exists := available[line.ProductID]
			if !exists || stock < line.Quantity {
				failed[line.ProductID] = true
			}
		}
	} else {
		storeFailed, err := s.repo.ReserveStock(ctx, lines)
		if err != nil {
			return nil, err
		}
		for _, id := range storeFailed {
			failed[id] = true
		}
	}

	var unavailable []string
	for _, id := range itemOrder {
		if failed[id] {
			unavailable = append(unavailable, id)
		}
	}

	if len(unavailable) > 0 {
		s.logUnavailable(ctx, unavailable, requested, malformed)
		return &models.PlaceOrderResponse{
			Success:         false,
			Message:         orderFailedMessage,
			OutOfStockItems: unavailable,
		}, nil
	}

	orderID := generateOrderID()
	for _, line := range lines {
		s.log.Info("stock reserved",
			"product_id", line.ProductID,
			"quantity", line.Quantity,
			"order_id", orderID,
		)
	}
	s.log.Info("order placed successfully",
		"order_id", orderID,
		"delivery_address", req.DeliveryAddress,
		"total_amount", req.TotalAmount,
		"items_count", len(req.Items),
	)

	return &models.PlaceOrderResponse{
		Success: true,
		Message: orderPlacedMessage,
		OrderID: orderID,
	}, nil
}

// coalesceItems merges duplicate lines per product id, preserving first-seen
// order across all lines, and flags ids that are not valid UUIDs.
func coalesceItems(items []models.OrderItemRequest) ([]models.StockLine, map[string]int, []string, map[string]bool) {
	requested := make(map[string]int, len(items))
	malformed := make(map[string]bool)
	var itemOrder []string

	for _, item := range items {
		if _, seen := requested[item.ID]; !seen {
			itemOrder = append(itemOrder, item.ID)
		}
		requested[item.ID] += item.Quantity
		if uuid.Validate(item.ID) != nil {
			malformed[item.ID] = true
		}
	}

	lines := make([]models.StockLine, 0, len(itemOrder))
	for _, id := range itemOrder {
		if malformed[id] {
			continue
		}
		lines = append(lines, models.StockLine{ProductID: id, Quantity: requested[id]})
	}
	return lines, requested, itemOrder, malformed
}

// logUnavailable mirrors the per-line failure detail: a line is either an
// unknown product or one with insufficient stock. Malformed ids are not
// looked up; they log as not found.
func (s *OrderService) logUnavailable(ctx context.Context, unavailable []string, requested map[string]int, malformed map[string]bool) {
	lookup := make([]string, 0, len(unavailable))
	for _, id := range unavailable {
		if !malformed[id] {
			lookup = append(lookup, id)
		}
	}

	found := make(map[string]models.Product)
	if len(lookup) > 0 {
		if products, err := s.repo.GetByIDs(ctx, lookup); err == nil {
			for _, p := range products {
				found[p.ID] = p
			}
		}
	}

	for _, id := range unavailable {
		if p, ok := found[id]; ok {
			s.log.Error("order failed: insufficient stock",
				"product_name", p.Name,
				"product_id", id,
				"requested", requested[id],
				"available", p.Stock,
			)
		} else {
			s.log.Error("order failed: product not found", "product_id", id)
		}
	}
}

// wait applies the configured processing delay, honoring cancellation
func (s *OrderService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateOrderID builds a synthetic order id from the current timestamp
func generateOrderID() string {
	return OrderIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
