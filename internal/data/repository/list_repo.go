package repository

import (
	"context"
	"fmt"

	"gift-shop/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListKind selects which owned product list an operation targets.
type ListKind string

const (
	ListCart     ListKind = "cart"
	ListWishlist ListKind = "wishlist"
)

// table maps a list kind to its join table. The kind is a closed enum,
// never caller-supplied text, so interpolating the name is safe.
func (k ListKind) table() string {
	switch k {
	case ListCart:
		return "cart_items"
	case ListWishlist:
		return "wishlist_items"
	}
	panic(fmt.Sprintf("unknown list kind %q", string(k)))
}

// ListRepository persists cart and wishlist membership. Both lists are
// sets: the composite primary key (user_id, product_id) makes inserts
// naturally deduplicating.
type ListRepository interface {
	// Add inserts a single item. Returns false if it was already present.
	Add(ctx context.Context, kind ListKind, userID, productID uuid.UUID) (bool, error)
	// AddMany inserts the given items, skipping ones already present.
	// Re-applying the same batch is a no-op.
	AddMany(ctx context.Context, kind ListKind, userID uuid.UUID, productIDs []uuid.UUID) error
	Remove(ctx context.Context, kind ListKind, userID, productID uuid.UUID) error
	Clear(ctx context.Context, kind ListKind, userID uuid.UUID) error
	ProductIDs(ctx context.Context, kind ListKind, userID uuid.UUID) ([]uuid.UUID, error)
}

type listRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListRepository(db database.PgxIface, log *zap.Logger) ListRepository {
	return &listRepository{
		db:  db,
		log: log,
	}
}

func (lr *listRepository) Add(ctx context.Context, kind ListKind, userID, productID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, product_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, kind.table())

	result, err := lr.db.Exec(ctx, query, userID, productID)
	if err != nil {
		lr.log.Error("Failed to add list item",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()),
		)
		return false, fmt.Errorf("add %s item: %w", kind, err)
	}

	return result.RowsAffected() > 0, nil
}

func (lr *listRepository) AddMany(ctx context.Context, kind ListKind, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, product_id, created_at)
		SELECT $1, unnest($2::uuid[]), NOW()
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, kind.table())

	_, err := lr.db.Exec(ctx, query, userID, productIDs)
	if err != nil {
		lr.log.Error("Failed to merge list items",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
			zap.Int("count", len(productIDs)),
		)
		return fmt.Errorf("merge %s items: %w", kind, err)
	}

	return nil
}

func (lr *listRepository) Remove(ctx context.Context, kind ListKind, userID, productID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND product_id = $2`, kind.table())

	_, err := lr.db.Exec(ctx, query, userID, productID)
	if err != nil {
		lr.log.Error("Failed to remove list item",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()),
		)
		return fmt.Errorf("remove %s item: %w", kind, err)
	}

	return nil
}

func (lr *listRepository) Clear(ctx context.Context, kind ListKind, userID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, kind.table())

	_, err := lr.db.Exec(ctx, query, userID)
	if err != nil {
		lr.log.Error("Failed to clear list",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear %s: %w", kind, err)
	}

	return nil
}

func (lr *listRepository) ProductIDs(ctx context.Context, kind ListKind, userID uuid.UUID) ([]uuid.UUID, error) {
	query := fmt.Sprintf(`SELECT product_id FROM %s WHERE user_id = $1`, kind.table())

	rows, err := lr.db.Query(ctx, query, userID)
	if err != nil {
		lr.log.Error("Failed to load list items",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("load %s items: %w", kind, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s item: %w", kind, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s items: %w", kind, err)
	}

	return ids, nil
}
