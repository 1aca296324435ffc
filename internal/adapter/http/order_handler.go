package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bistro/internal/adapter/logger"
	"bistro/internal/interfaces"
)

type OrderHandler struct {
	orders interfaces.OrderService
	lgr    logger.Logger
}

func NewOrderHandler(orders interfaces.OrderService, lgr logger.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, lgr: lgr}
}

type submitOrderRequest struct {
	CustomerName  string                   `json:"customer_name"`
	CustomerEmail string                   `json:"customer_email"`
	CustomerPhone string                   `json:"customer_phone"`
	Notes         string                   `json:"notes"`
	Items         []submitOrderItemRequest `json:"items"`
}

type submitOrderItemRequest struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// SubmitOrder prices and persists a customer cart.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]interfaces.SubmitOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, interfaces.SubmitOrderItem{MenuItemID: it.ID, Quantity: it.Quantity})
	}

	order, err := h.orders.Submit(r.Context(), interfaces.SubmitOrderCommand{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Items:         items,
	})
	if err != nil {
		h.lgr.Error("order_submit_failed", "Failed to submit order", requestID(r), map[string]interface{}{
			"customer_name": req.CustomerName,
			"items":         len(req.Items),
		}, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"order_id": order.ID,
		"order":    toOrderResponse(order),
	})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := interfaces.ListOrdersQuery{
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", 10),
		Status:  r.URL.Query().Get("status"),
	}

	page, err := h.orders.List(r.Context(), query)
	if err != nil {
		h.lgr.Error("orders_list_failed", "Failed to list orders", requestID(r), nil, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"orders":       toOrderResponses(page.Orders),
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
	})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

type updateStatusRequest struct {
	Status *string `json:"status"`
}

// UpdateStatus moves an order to a new lifecycle status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == nil {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	order, err := h.orders.SetStatus(r.Context(), id, *req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   toOrderResponse(order),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
