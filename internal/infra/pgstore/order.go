package pgstore

import (
	"context"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, order_id, product_name, platform, purchase_date, status,
	order_url, last_status_check_at, created_at, updated_at`

type OrderStore struct {
	db DBTX
}

func (s *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := scanOrder(s.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("order not found")
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var out []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}
	return out, nil
}

func (s *OrderStore) Insert(ctx context.Context, o *order.Order) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.UserID, o.OrderID, o.ProductName, o.Platform, o.PurchaseDate, o.Status,
		o.OrderURL, pgconv.TimePtrToPgtype(o.LastStatusCheckAt), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

func (s *OrderStore) Update(ctx context.Context, o *order.Order) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE orders SET status = $2, last_status_check_at = $3, updated_at = $4 WHERE id = $1`,
		o.ID, o.Status, pgconv.TimePtrToPgtype(o.LastStatusCheckAt), o.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("order not found")
	}
	return nil
}

func (s *OrderStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("order not found")
	}
	return nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		o         order.Order
		lastCheck pgtype.Timestamptz
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.OrderID, &o.ProductName, &o.Platform, &o.PurchaseDate,
		&o.Status, &o.OrderURL, &lastCheck, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.LastStatusCheckAt = pgconv.TimePtrFromPgtype(lastCheck)
	o.PurchaseDate = o.PurchaseDate.UTC()
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}
