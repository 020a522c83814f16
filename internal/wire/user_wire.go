package wire

import (
	"gift-shop/internal/adaptor"
	"gift-shop/internal/data/entity"
	"gift-shop/internal/data/repository"
	"gift-shop/pkg/middleware"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log)) // Must be authenticated

		// ==================== PROTECTED ROUTES ====================
		// Own profile (any authenticated role)
		r.Get("/me", userHandler.GetProfile)
		r.Patch("/me", userHandler.UpdateProfile)

		// Detail view is shared between admin and staff
		r.With(middleware.RequireRoles(repo.User, log, entity.RoleAdmin, entity.RoleStaff)).
			Get("/{id}", userHandler.GetUser)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(repo.User, log, entity.RoleAdmin)) // Must be admin

			r.Get("/", userHandler.ListUsers)         // GET /api/users
			r.Post("/staff", userHandler.CreateStaff) // POST /api/users/staff
			r.Patch("/{id}", userHandler.UpdateUser)  // PATCH /api/users/{id}
			r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/users/{id}
		})
	})
}
