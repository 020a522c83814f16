package usecase

import (
	"gift-shop/internal/data/repository"
	"gift-shop/internal/notifier"
	"gift-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	List    ListService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, mail notifier.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, mail, config, log),
		User:    NewUserService(repo, mail, config, log),
		List:    NewListService(repo, log),
		Catalog: NewCatalogService(repo, log),
	}
}
