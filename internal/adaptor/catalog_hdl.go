package adaptor

import (
	"net/http"

	"gift-shop/internal/usecase"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// ListProducts handles GET /api/products?page=1&per_page=10. Runs
// behind the optional auth gate: authenticated callers additionally
// get cart/wishlist membership flags.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 10)
	if perPage > 100 {
		perPage = 100
	}

	resp, err := h.service.ListProducts(r.Context(), optionalUserID(r), page, perPage)
	if err != nil {
		respondServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", resp)
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	resp, err := h.service.GetProduct(r.Context(), optionalUserID(r), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", resp)
}

func optionalUserID(r *http.Request) *uuid.UUID {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}
