package adaptor

import (
	"errors"
	"net/http"

	"gift-shop/internal/data/repository"
	"gift-shop/internal/usecase"
	"gift-shop/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Cart     *ListHandler
	Wishlist *ListHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Cart:     NewListHandler(service.List, repository.ListCart, log),
		Wishlist: NewListHandler(service.List, repository.ListWishlist, log),
	}
}

// respondServiceError translates the service error taxonomy into HTTP
// categories. Messages stay short and never carry internal detail.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials", nil)

	case errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - invalid token", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid or expired token", nil)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
