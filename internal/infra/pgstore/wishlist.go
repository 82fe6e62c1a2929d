package pgstore

import (
	"context"

	"shopcompare/internal/domain/wishlist"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const wishlistColumns = `id, user_id, product_id, target_price, added_at`

type WishlistStore struct {
	db DBTX
}

func (s *WishlistStore) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*wishlist.Item, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+wishlistColumns+` FROM wishlist_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	item, err := scanWishlistItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("wishlist item not found")
		}
		return nil, infra.WrapRepoErr("failed to find wishlist item", err)
	}
	return item, nil
}

func (s *WishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*wishlist.Item, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+wishlistColumns+` FROM wishlist_items WHERE user_id = $1 ORDER BY added_at, id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist", err)
	}
	defer rows.Close()

	var out []*wishlist.Item
	for rows.Next() {
		item, err := scanWishlistItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan wishlist item", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wishlist", err)
	}
	return out, nil
}

func (s *WishlistStore) Insert(ctx context.Context, item *wishlist.Item) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO wishlist_items (`+wishlistColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.UserID, item.ProductID, pgconv.Float64PtrToPgtype(item.TargetPrice), item.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("wishlist item already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert wishlist item", err)
	}
	return nil
}

func (s *WishlistStore) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete wishlist item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("wishlist item not found")
	}
	return nil
}

func scanWishlistItem(row pgx.Row) (*wishlist.Item, error) {
	var (
		item   wishlist.Item
		target pgtype.Float8
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &target, &item.AddedAt); err != nil {
		return nil, err
	}
	item.TargetPrice = pgconv.Float64PtrFromPgtype(target)
	item.AddedAt = item.AddedAt.UTC()
	return &item, nil
}
