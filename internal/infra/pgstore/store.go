// Package pgstore keeps the documents in PostgreSQL. Nested collections such
// as a product's platforms live in JSONB columns.
package pgstore

import (
	"context"
	_ "embed"
	"errors"

	"shopcompare/internal/infra"
	"shopcompare/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

const pgErrCodeUniqueViolation = "23505"

// DBTX is satisfied by both the pool and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type Store struct {
	pool *pgxpool.Pool

	products *ProductStore
	deals    *DealStore
	users    *UserStore
	wishlist *WishlistStore
	orders   *OrderStore
	history  *SearchHistoryStore
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:     pool,
		products: &ProductStore{pool: pool},
		deals:    &DealStore{db: pool},
		users:    &UserStore{db: pool},
		wishlist: &WishlistStore{db: pool},
		orders:   &OrderStore{db: pool},
		history:  &SearchHistoryStore{db: pool},
	}
}

var _ shared.Store = (*Store)(nil)

// Migrate applies the embedded schema. Every statement is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return infra.WrapRepoErr("failed to apply schema", err)
	}
	return nil
}

func (s *Store) Products() shared.ProductStore            { return s.products }
func (s *Store) Deals() shared.DealStore                  { return s.deals }
func (s *Store) Users() shared.UserStore                  { return s.users }
func (s *Store) Wishlist() shared.WishlistStore           { return s.wishlist }
func (s *Store) Orders() shared.OrderStore                { return s.orders }
func (s *Store) SearchHistory() shared.SearchHistoryStore { return s.history }

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
