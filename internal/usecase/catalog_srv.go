package usecase

import (
	"context"
	"fmt"

	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService is the read-only product surface. When a caller is
// authenticated, listings carry cart/wishlist membership flags.
type CatalogService interface {
	ListProducts(ctx context.Context, userID *uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProduct(ctx context.Context, userID *uuid.UUID, id uuid.UUID) (*response.ProductResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, userID *uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.ProductResponse], error) {
	offset := (page - 1) * perPage

	products, err := s.repo.Product.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: list products", ErrUpstream)
	}

	total, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count products", ErrUpstream)
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.ProductToResponse(product))
	}

	if userID != nil {
		if err := s.flagMembership(ctx, *userID, items); err != nil {
			return nil, err
		}
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *catalogService) GetProduct(ctx context.Context, userID *uuid.UUID, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find product", ErrUpstream)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	items := []response.ProductResponse{response.ProductToResponse(product)}
	if userID != nil {
		if err := s.flagMembership(ctx, *userID, items); err != nil {
			return nil, err
		}
	}

	return &items[0], nil
}

func (s *catalogService) flagMembership(ctx context.Context, userID uuid.UUID, items []response.ProductResponse) error {
	cartIDs, err := s.repo.List.ProductIDs(ctx, repository.ListCart, userID)
	if err != nil {
		return fmt.Errorf("%w: load cart", ErrUpstream)
	}
	wishIDs, err := s.repo.List.ProductIDs(ctx, repository.ListWishlist, userID)
	if err != nil {
		return fmt.Errorf("%w: load wishlist", ErrUpstream)
	}

	inCart := make(map[string]bool, len(cartIDs))
	for _, id := range cartIDs {
		inCart[id.String()] = true
	}
	inWish := make(map[string]bool, len(wishIDs))
	for _, id := range wishIDs {
		inWish[id.String()] = true
	}

	for i := range items {
		cart := inCart[items[i].ID]
		wish := inWish[items[i].ID]
		items[i].InCart = &cart
		items[i].InWishlist = &wish
	}
	return nil
}
