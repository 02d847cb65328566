package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
	"github.com/salus-templates/shopping-cart-products-api/internal/repository"
)

const (
	// Seed catalog entries used across tests
	smartBulbsID  = "0b73a09f-b47f-4ac0-80a9-d91ed9f24c85" // stock 30
	smartwatchID  = "c2a9133d-3e52-4c90-bb9d-bbc7b5284b44" // stock 5
	robotVacuumID = "b0a4a3cc-4c0a-4b73-97cb-cb9a344a1d10" // stock 2
	unknownID     = "9f1b1c2d-0000-4000-8000-000000000000"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stockOf(t *testing.T, repo repository.ProductRepository, id string) int {
	t.Helper()
	product, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to fetch product %s: %v", id, err)
	}
	return product.Stock
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name            string
		items           []models.OrderItemRequest
		wantErr         error
		wantSuccess     bool
		wantUnavailable []string
		wantStock       map[string]int
	}{
		{
			name: "valid single item decrements stock",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: 5},
			},
			wantSuccess: true,
			wantStock:   map[string]int{smartBulbsID: 25},
		},
		{
			name: "unknown product fails without mutation",
			items: []models.OrderItemRequest{
				{ID: unknownID, Quantity: 1},
			},
			wantSuccess:     false,
			wantUnavailable: []string{unknownID},
		},
		{
			name: "one short line fails the whole order",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: 5},
				{ID: robotVacuumID, Quantity: 3}, // stock is 2
			},
			wantSuccess:     false,
			wantUnavailable: []string{robotVacuumID},
			wantStock:       map[string]int{smartBulbsID: 30, robotVacuumID: 2},
		},
		{
			name: "duplicate lines are validated cumulatively",
			items: []models.OrderItemRequest{
				{ID: robotVacuumID, Quantity: 1},
				{ID: robotVacuumID, Quantity: 2}, // 3 total against stock 2
			},
			wantSuccess:     false,
			wantUnavailable: []string{robotVacuumID},
			wantStock:       map[string]int{robotVacuumID: 2},
		},
		{
			name: "duplicate lines within stock succeed once",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: 2},
				{ID: smartBulbsID, Quantity: 2},
			},
			wantSuccess: true,
			wantStock:   map[string]int{smartBulbsID: 26},
		},
		{
			name:        "empty order is accepted vacuously",
			items:       []models.OrderItemRequest{},
			wantSuccess: true,
			wantStock:   map[string]int{smartBulbsID: 30, smartwatchID: 5},
		},
		{
			name: "zero quantity is rejected",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: 0},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "negative quantity is rejected",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: -1},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "malformed id counts as unavailable",
			items: []models.OrderItemRequest{
				{ID: "not-a-uuid", Quantity: 1},
			},
			wantSuccess:     false,
			wantUnavailable: []string{"not-a-uuid"},
		},
		{
			name: "malformed id does not hide other failing lines",
			items: []models.OrderItemRequest{
				{ID: robotVacuumID, Quantity: 3}, // stock is 2
				{ID: "not-a-uuid", Quantity: 1},
			},
			wantSuccess:     false,
			wantUnavailable: []string{robotVacuumID, "not-a-uuid"},
			wantStock:       map[string]int{robotVacuumID: 2},
		},
		{
			name: "malformed id fails satisfiable lines without mutation",
			items: []models.OrderItemRequest{
				{ID: smartBulbsID, Quantity: 5},
				{ID: "not-a-uuid", Quantity: 1},
			},
			wantSuccess:     false,
			wantUnavailable: []string{"not-a-uuid"},
			wantStock:       map[string]int{smartBulbsID: 30},
		},
		{
			name: "malformed id alongside unknown product reports both",
			items: []models.OrderItemRequest{
				{ID: "not-a-uuid", Quantity: 1},
				{ID: unknownID, Quantity: 1},
			},
			wantSuccess:     false,
			wantUnavailable: []string{"not-a-uuid", unknownID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewInMemoryProductRepository()
			svc := NewOrderService(repo, testLogger(), 0)

			resp, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
				Items:           tt.items,
				DeliveryAddress: "123 Test Street",
			})

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("PlaceOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceOrder() unexpected error = %v", err)
			}

			if resp.Success != tt.wantSuccess {
				t.Errorf("PlaceOrder() success = %v, want %v", resp.Success, tt.wantSuccess)
			}

			if tt.wantSuccess {
				if !strings.HasPrefix(resp.OrderID, OrderIDPrefix) {
					t.Errorf("order ID %q does not start with %q", resp.OrderID, OrderIDPrefix)
				}
				if resp.Message != "Order placed successfully!" {
					t.Errorf("unexpected message %q", resp.Message)
				}
				if len(resp.OutOfStockItems) != 0 {
					t.Errorf("success response carries out-of-stock items: %v", resp.OutOfStockItems)
				}
			} else {
				if resp.OrderID != "" {
					t.Errorf("failure response carries order ID %q", resp.OrderID)
				}
				if resp.Message != "Order failed: Some items are out of stock or requested quantity exceeds available stock." {
					t.Errorf("unexpected message %q", resp.Message)
				}
				if len(resp.OutOfStockItems) != len(tt.wantUnavailable) {
					t.Fatalf("out-of-stock items = %v, want %v", resp.OutOfStockItems, tt.wantUnavailable)
				}
				for i, id := range tt.wantUnavailable {
					if resp.OutOfStockItems[i] != id {
						t.Errorf("out-of-stock item %d = %q, want %q", i, resp.OutOfStockItems[i], id)
					}
				}
			}

			for id, want := range tt.wantStock {
				if got := stockOf(t, repo, id); got != want {
					t.Errorf("stock of %s = %d, want %d", id, got, want)
				}
			}
		})
	}
}

func TestOrderService_PlaceOrder_DelayHonorsCancellation(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewOrderService(repo, testLogger(), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{
		Items: []models.OrderItemRequest{{ID: smartBulbsID, Quantity: 1}},
	})
	if err != context.Canceled {
		t.Fatalf("PlaceOrder() error = %v, want context.Canceled", err)
	}

	if got := stockOf(t, repo, smartBulbsID); got != 30 {
		t.Errorf("stock mutated on cancelled order: %d", got)
	}
}

func TestOrderService_PlaceOrder_UniqueishOrderIDs(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewOrderService(repo, testLogger(), 0)

	resp, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{})
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error = %v", err)
	}

	suffix := strings.TrimPrefix(resp.OrderID, OrderIDPrefix)
	if suffix == "" || suffix == resp.OrderID {
		t.Fatalf("order ID %q lacks the timestamp suffix", resp.OrderID)
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			t.Fatalf("order ID suffix %q is not numeric", suffix)
		}
	}
}
