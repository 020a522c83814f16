package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newListRepoMock(t *testing.T) (ListRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewListRepository(mock, zap.NewNop()), mock
}

func TestListRepoAdd_Inserted(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID, productID := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO cart_items (.+) ON CONFLICT \(user_id, product_id\) DO NOTHING`).
		WithArgs(userID, productID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.Add(context.Background(), ListCart, userID, productID)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepoAdd_AlreadyPresent(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID, productID := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO wishlist_items`).
		WithArgs(userID, productID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.Add(context.Background(), ListWishlist, userID, productID)
	require.NoError(t, err)
	assert.False(t, inserted, "conflict is reported, not swallowed")
}

func TestListRepoAddMany(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(`INSERT INTO cart_items (.+) unnest\(\$2::uuid\[\]\)`).
		WithArgs(userID, ids).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, repo.AddMany(context.Background(), ListCart, userID, ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepoAddMany_EmptySkipsDatabase(t *testing.T) {
	repo, mock := newListRepoMock(t)

	require.NoError(t, repo.AddMany(context.Background(), ListCart, uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepoProductIDs(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT product_id FROM wishlist_items WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"product_id"}).AddRow(p1).AddRow(p2))

	ids, err := repo.ProductIDs(context.Background(), ListWishlist, userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1, p2}, ids)
}

func TestListRepoClear(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM wishlist_items WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	require.NoError(t, repo.Clear(context.Background(), ListWishlist, userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepoRemove(t *testing.T) {
	repo, mock := newListRepoMock(t)
	userID, productID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1 AND product_id = \$2`).
		WithArgs(userID, productID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Remove(context.Background(), ListCart, userID, productID))
}
