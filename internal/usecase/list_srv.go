package usecase

import (
	"context"
	"fmt"

	"gift-shop/internal/data/repository"
	"gift-shop/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListService owns the cart and wishlist, including the merge of
// guest-held item lists into an authenticated account. Merge and Get
// are separate operations; the sync endpoint composes them.
type ListService interface {
	Get(ctx context.Context, kind repository.ListKind, userID uuid.UUID) ([]response.ProductResponse, error)
	Add(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) error
	Remove(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) error
	Clear(ctx context.Context, kind repository.ListKind, userID uuid.UUID) error
	Merge(ctx context.Context, kind repository.ListKind, userID uuid.UUID, productIDs []uuid.UUID) error
}

type listService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListService(repo *repository.Repository, log *zap.Logger) ListService {
	return &listService{
		repo: repo,
		log:  log,
	}
}

func (s *listService) Get(ctx context.Context, kind repository.ListKind, userID uuid.UUID) ([]response.ProductResponse, error) {
	ids, err := s.repo.List.ProductIDs(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s", ErrUpstream, kind)
	}

	products, err := s.repo.Product.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: populate %s", ErrUpstream, kind)
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.ProductToResponse(product))
	}
	return items, nil
}

func (s *listService) Add(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) error {
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%w: find product", ErrUpstream)
	}
	if product == nil {
		return fmt.Errorf("%w: product not found", ErrNotFound)
	}

	inserted, err := s.repo.List.Add(ctx, kind, userID, productID)
	if err != nil {
		return fmt.Errorf("%w: add to %s", ErrUpstream, kind)
	}
	if !inserted {
		return fmt.Errorf("%w: product already in %s", ErrConflict, kind)
	}

	return nil
}

func (s *listService) Remove(ctx context.Context, kind repository.ListKind, userID, productID uuid.UUID) error {
	if err := s.repo.List.Remove(ctx, kind, userID, productID); err != nil {
		return fmt.Errorf("%w: remove from %s", ErrUpstream, kind)
	}
	return nil
}

func (s *listService) Clear(ctx context.Context, kind repository.ListKind, userID uuid.UUID) error {
	if err := s.repo.List.Clear(ctx, kind, userID); err != nil {
		return fmt.Errorf("%w: clear %s", ErrUpstream, kind)
	}
	return nil
}

// Merge folds a guest-held list into the account's persisted one.
// Incoming references are validated against the catalog; unknown ones
// are silently dropped, never an error. The result is the set union of
// the persisted list and the validated incoming list, so reapplying
// the same merge is a no-op.
func (s *listService) Merge(ctx context.Context, kind repository.ListKind, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	valid, err := s.repo.Product.FilterExisting(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("%w: validate %s items", ErrUpstream, kind)
	}
	if len(valid) == 0 {
		return nil
	}

	if err := s.repo.List.AddMany(ctx, kind, userID, valid); err != nil {
		return fmt.Errorf("%w: merge %s", ErrUpstream, kind)
	}

	s.log.Info("Guest list merged",
		zap.String("kind", string(kind)),
		zap.String("user_id", userID.String()),
		zap.Int("incoming", len(productIDs)),
		zap.Int("valid", len(valid)),
	)
	return nil
}
