package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"wishlist/internal/core"
	"wishlist/internal/store"
)

const catalogCacheKey = "catalog"

// itemView is the wire form of an item with its current status merged in.
// Unset statuses are omitted entirely, not sent as empty strings.
type itemView struct {
	core.Item
	Status core.Status `json:"status,omitempty"`
}

type categoryView struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Icon             string     `json:"icon"`
	PurchaseDeadline string     `json:"purchaseDeadline,omitempty"`
	Items            []itemView `json:"items"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.listCategories(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Catalog list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	// Statuses come from the live snapshot on every request. Only the
	// catalog itself is cached.
	statuses := s.reconciler.Snapshot()

	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		view := categoryView{
			ID:               cat.ID,
			Name:             cat.Name,
			Icon:             cat.Icon,
			PurchaseDeadline: cat.PurchaseDeadline,
			Items:            make([]itemView, 0, len(cat.Items)),
		}
		for _, item := range cat.Items {
			view.Items = append(view.Items, itemView{Item: item, Status: statuses[item.ID]})
		}
		views = append(views, view)
	}

	writeJSON(w, http.StatusOK, views)
}

// listCategories returns the catalog, serving from cache when possible.
func (s *Server) listCategories(r *http.Request) ([]core.Category, error) {
	if categories, found := s.catalogCache.Get(catalogCacheKey); found {
		s.metrics.cacheHits.Add(1)
		return categories, nil
	}
	s.metrics.cacheMisses.Add(1)

	categories, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		return nil, err
	}
	s.catalogCache.Set(catalogCacheKey, categories)
	return categories, nil
}

type createCategoryRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Icon             string `json:"icon"`
	PurchaseDeadline string `json:"purchaseDeadline"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	category := core.Category{
		ID:               req.ID,
		Name:             sanitizeInput(req.Name),
		Icon:             sanitizeInput(req.Icon),
		PurchaseDeadline: sanitizeInput(req.PurchaseDeadline),
	}
	if err := category.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.catalog.AddCategory(r.Context(), category); err != nil {
		slog.ErrorContext(r.Context(), "Category create error", "error", err, "category_id", category.ID)
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	s.metrics.catalogWrites.Add(1)
	s.catalogCache.Purge()
	writeOK(w, http.StatusCreated)
}

type createItemRequest struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	IsPreferred bool     `json:"isPreferred"`
	Notes       []string `json:"notes"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CategoryID == "" {
		writeError(w, http.StatusUnprocessableEntity, "categoryId is required")
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	imageURL := req.ImageURL
	if req.URL != "" && imageURL == "" && s.scraper != nil {
		imageURL = s.scraper.OgImage(r.Context(), req.URL)
	}

	item := core.Item{
		ID:          req.ID,
		Name:        sanitizeInput(req.Name),
		URL:         req.URL,
		Price:       req.Price,
		ImageURL:    imageURL,
		IsPreferred: req.IsPreferred,
		Notes:       req.Notes,
	}
	if err := item.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.catalog.AddItem(r.Context(), req.CategoryID, item); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Item create error", "error", err, "item_id", item.ID, "category_id", req.CategoryID)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	s.metrics.catalogWrites.Add(1)
	s.catalogCache.Purge()
	writeOK(w, http.StatusCreated)
}
