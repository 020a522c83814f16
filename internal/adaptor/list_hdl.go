package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/request"
	"gift-shop/internal/usecase"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListHandler serves both the cart and the wishlist; the two trees are
// identical apart from the backing table, so one handler is
// instantiated per kind.
type ListHandler struct {
	service usecase.ListService
	kind    repository.ListKind
	log     *zap.Logger
}

func NewListHandler(service usecase.ListService, kind repository.ListKind, log *zap.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		kind:    kind,
		log:     log,
	}
}

// Get handles GET /api/{cart|wishlist}
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	items, err := h.service.Get(r.Context(), h.kind, userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get "+string(h.kind))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%s retrieved", h.kind), items)
}

// Add handles POST /api/{cart|wishlist}/{productID}
func (h *ListHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.Add(r.Context(), h.kind, userID, productID); err != nil {
		respondServiceError(w, h.log, err, "add to "+string(h.kind))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Product added to %s", h.kind), nil)
}

// Remove handles DELETE /api/{cart|wishlist}/{productID}
func (h *ListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), h.kind, userID, productID); err != nil {
		respondServiceError(w, h.log, err, "remove from "+string(h.kind))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Product removed from %s", h.kind), nil)
}

// Clear handles DELETE /api/{cart|wishlist}
func (h *ListHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	if err := h.service.Clear(r.Context(), h.kind, userID); err != nil {
		respondServiceError(w, h.log, err, "clear "+string(h.kind))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%s cleared successfully", h.kind), nil)
}

// Sync handles POST /api/{cart|wishlist}/sync. It merges the guest's
// locally held references into the account, then returns the unified
// populated list. Entries that are not valid UUIDs or not in the
// catalog are dropped without failing the request; a body that is not
// an array of identifiers is rejected before any lookup.
func (h *ListHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	var req request.SyncListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body, product_ids must be an array", nil)
		return
	}
	if req.ProductIDs == nil {
		utils.ResponseBadRequest(w, "Invalid request body, product_ids must be an array", nil)
		return
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			// Not a valid reference, cannot exist in the catalog.
			continue
		}
		productIDs = append(productIDs, id)
	}

	if err := h.service.Merge(r.Context(), h.kind, userID, productIDs); err != nil {
		respondServiceError(w, h.log, err, "sync "+string(h.kind))
		return
	}

	items, err := h.service.Get(r.Context(), h.kind, userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get "+string(h.kind))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%s synced", h.kind), items)
}
