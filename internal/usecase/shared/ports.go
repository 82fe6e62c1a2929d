package shared

import (
	"context"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/domain/order"
	"shopcompare/internal/domain/product"
	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/domain/user"
	"shopcompare/internal/domain/wishlist"

	"github.com/google/uuid"
)

// Store is the document store handle. Adapters: pgstore, mongostore, memstore.
// Lookups that find nothing return an infra.RepositoryError of KindNotFound.
type Store interface {
	Products() ProductStore
	Deals() DealStore
	Users() UserStore
	Wishlist() WishlistStore
	Orders() OrderStore
	SearchHistory() SearchHistoryStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type ProductStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// FindByName matches the normalized name case-insensitively.
	FindByName(ctx context.Context, name string) (*product.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error)
	// SearchByText is a case-insensitive substring match on name or keywords.
	SearchByText(ctx context.Context, query string) ([]*product.Product, error)
	// Insert returns KindDuplicateKey when a product with the same name exists.
	Insert(ctx context.Context, p *product.Product) error
	// Modify applies fn to the stored product atomically and persists the result.
	Modify(ctx context.Context, id uuid.UUID, fn func(*product.Product) error) (*product.Product, error)
}

type DealStore interface {
	List(ctx context.Context) ([]*deal.Deal, error)
	InsertMany(ctx context.Context, deals []*deal.Deal) error
	// DeleteOlderThan removes deals with ScrapedAt strictly before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// Insert returns KindDuplicateKey when the email is taken.
	Insert(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
}

type WishlistStore interface {
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*wishlist.Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*wishlist.Item, error)
	// Insert returns KindDuplicateKey when (user, product) already exists.
	Insert(ctx context.Context, item *wishlist.Item) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type OrderStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
	Insert(ctx context.Context, o *order.Order) error
	Update(ctx context.Context, o *order.Order) error
	// Delete only removes an order owned by userID.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type SearchHistoryStore interface {
	Insert(ctx context.Context, e *searchhistory.Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*searchhistory.Entry, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*searchhistory.Entry, error)
}
