package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

type AdminHandler struct {
	catalog interfaces.CatalogService
	stats   interfaces.StatsService
	lgr     logger.Logger
}

func NewAdminHandler(catalog interfaces.CatalogService, stats interfaces.StatsService, lgr logger.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, stats: stats, lgr: lgr}
}

// ListMenu returns every catalog entry, unavailable ones included.
func (h *AdminHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListAll(r.Context())
	if err != nil {
		h.lgr.Error("admin_menu_read_failed", "Failed to list menu", requestID(r), nil, err)
		respondServiceError(w, err)
		return
	}

	resp := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMenuItemResponse(item))
	}
	respondJSON(w, http.StatusOK, resp)
}

type createMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       *Money  `json:"price"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
	ImageURL    *string `json:"image_url"`
}

func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDecodeError(w, err)
		return
	}

	cmd := interfaces.CreateMenuItemCommand{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		cmd.Price = &price
	}

	item, err := h.catalog.Create(r.Context(), cmd)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"item":    toMenuItemResponse(*item),
	})
}

type updateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *Money  `json:"price"`
	Category    *string `json:"category"`
	Available   *bool   `json:"available"`
	ImageURL    *string `json:"image_url"`
}

func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDecodeError(w, err)
		return
	}

	cmd := interfaces.UpdateMenuItemCommand{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		cmd.Price = &price
	}

	item, err := h.catalog.Update(r.Context(), id, cmd)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"item":    toMenuItemResponse(*item),
	})
}

func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// respondDecodeError keeps malformed bodies at 400 whether the failure is a
// coercion error from a field type (like Money) or broken JSON.
func respondDecodeError(w http.ResponseWriter, err error) {
	var ve domain.ValidationError
	if errors.As(err, &ve) {
		respondError(w, http.StatusBadRequest, ve.Message)
		return
	}
	respondError(w, http.StatusBadRequest, "invalid request body")
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		h.lgr.Error("stats_read_failed", "Failed to compute stats", requestID(r), nil, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"total_orders":   summary.TotalOrders,
		"pending_orders": summary.PendingOrders,
		"total_revenue":  summary.TotalRevenue,
		"popular_items":  toPopularItems(summary.PopularItems),
	})
}
