package wire

import (
	"gift-shop/internal/adaptor"
	"gift-shop/pkg/middleware"
	"gift-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Registration and login (no auth middleware)
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// Email verification (link clicked from the mail)
	r.Get("/api/verify-email/{token}", authHandler.VerifyEmail)
	r.Post("/api/resend-verification", authHandler.ResendVerification)

	// Password reset flow
	r.Post("/api/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	// Change password - PROTECTED (needs a valid session token)
	r.With(middleware.Auth(config.JWT.Secret, log)).Patch("/api/change-password", authHandler.ChangePassword)
}
