package wire

import (
	"net/http"

	"gift-shop/internal/adaptor"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/notifier"
	"gift-shop/internal/usecase"
	"gift-shop/pkg/middleware"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, mail notifier.Sender, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes
	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireCatalog(r, handler.Catalog, config, logger)
	wireList(r, "/api/cart", handler.Cart, false, config, logger)
	wireList(r, "/api/wishlist", handler.Wishlist, true, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
