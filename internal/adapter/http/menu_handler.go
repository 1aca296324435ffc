package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bistro/internal/adapter/logger"
	"bistro/internal/interfaces"
)

type MenuHandler struct {
	catalog interfaces.CatalogService
	lgr     logger.Logger
}

func NewMenuHandler(catalog interfaces.CatalogService, lgr logger.Logger) *MenuHandler {
	return &MenuHandler{catalog: catalog, lgr: lgr}
}

// GetMenu returns the available catalog grouped by category.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.catalog.Menu(r.Context())
	if err != nil {
		h.lgr.Error("menu_read_failed", "Failed to load menu", requestID(r), nil, err)
		respondServiceError(w, err)
		return
	}

	resp := make(map[string][]menuItemResponse, len(grouped))
	for category, items := range grouped {
		views := make([]menuItemResponse, 0, len(items))
		for _, item := range items {
			views = append(views, toMenuItemResponse(item))
		}
		resp[category] = views
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	item, err := h.catalog.MenuItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemResponse(*item))
}
