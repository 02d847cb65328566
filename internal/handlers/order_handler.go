package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/salus-templates/shopping-cart-products-api/internal/models"
	"github.com/salus-templates/shopping-cart-products-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// PlaceOrder handles POST /place-order
// Responds 200 with the order id on success, 400 with the out-of-stock item
// list when any line cannot be satisfied.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	resp, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
			return
		}

		h.log.Error("failed to place order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if !resp.Success {
		WriteJSON(w, http.StatusBadRequest, resp, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}
