package wire

import (
	"gift-shop/internal/adaptor"
	"gift-shop/pkg/middleware"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Product listing is public; a valid token additionally flags
	// which products sit in the caller's cart and wishlist.
	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(config.JWT.Secret, log))

		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{id}", catalogHandler.GetProduct)
	})
}
