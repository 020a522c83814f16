package usecase

import (
	"context"
	"testing"

	"gift-shop/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProduct_AnonymousHasNoFlags(t *testing.T) {
	p := product("mug")
	repo := &repository.Repository{
		User:    newFakeUserRepo(),
		Product: newFakeProductRepo(p),
		List:    newFakeListRepo(),
	}
	service := NewCatalogService(repo, zap.NewNop())

	got, err := service.GetProduct(context.Background(), nil, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InCart)
	assert.Nil(t, got.InWishlist)
}

func TestGetProduct_AuthenticatedSeesMembership(t *testing.T) {
	p := product("mug")
	listRepo := newFakeListRepo()
	repo := &repository.Repository{
		User:    newFakeUserRepo(),
		Product: newFakeProductRepo(p),
		List:    listRepo,
	}
	service := NewCatalogService(repo, zap.NewNop())

	userID := uuid.New()
	_, err := listRepo.Add(context.Background(), repository.ListCart, userID, p.ID)
	require.NoError(t, err)

	got, err := service.GetProduct(context.Background(), &userID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.InCart)
	assert.True(t, *got.InCart)
	require.NotNil(t, got.InWishlist)
	assert.False(t, *got.InWishlist)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := &repository.Repository{
		User:    newFakeUserRepo(),
		Product: newFakeProductRepo(),
		List:    newFakeListRepo(),
	}
	service := NewCatalogService(repo, zap.NewNop())

	_, err := service.GetProduct(context.Background(), nil, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProducts_Pagination(t *testing.T) {
	repo := &repository.Repository{
		User:    newFakeUserRepo(),
		Product: newFakeProductRepo(product("mug"), product("poster")),
		List:    newFakeListRepo(),
	}
	service := NewCatalogService(repo, zap.NewNop())

	resp, err := service.ListProducts(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}
