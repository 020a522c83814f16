package wire

import (
	"gift-shop/internal/adaptor"
	"gift-shop/pkg/middleware"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireList(
	r chi.Router,
	path string,
	listHandler *adaptor.ListHandler,
	clearable bool,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Cart and wishlist share the same shape, mounted at different paths
	r.Route(path, func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/", listHandler.Get)
		r.Post("/{productID}", listHandler.Add)
		r.Delete("/{productID}", listHandler.Remove)

		// Merge locally kept guest items into the stored list
		r.Post("/sync", listHandler.Sync)

		if clearable {
			r.Delete("/", listHandler.Clear)
		}
	})
}
