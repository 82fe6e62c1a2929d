// Package mongostore keeps each aggregate as one MongoDB document. Identifiers
// are stored as UUID strings in _id.
package mongostore

import (
	"context"
	"time"

	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collProducts      = "products"
	collDeals         = "daily_deals"
	collUsers         = "users"
	collWishlist      = "wishlist_items"
	collOrders        = "orders"
	collSearchHistory = "search_history"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database

	products *ProductStore
	deals    *DealStore
	users    *UserStore
	wishlist *WishlistStore
	orders   *OrderStore
	history  *SearchHistoryStore
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to connect to mongo", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, infra.WrapRepoErr("failed to ping mongo", err)
	}

	return New(client, cfg.Database), nil
}

func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:   client,
		db:       db,
		products: &ProductStore{coll: db.Collection(collProducts)},
		deals:    &DealStore{coll: db.Collection(collDeals)},
		users:    &UserStore{coll: db.Collection(collUsers)},
		wishlist: &WishlistStore{coll: db.Collection(collWishlist)},
		orders:   &OrderStore{coll: db.Collection(collOrders)},
		history:  &SearchHistoryStore{coll: db.Collection(collSearchHistory)},
	}
}

var _ shared.Store = (*Store)(nil)

// EnsureIndexes creates the unique and lookup indexes. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collProducts: {
			{Keys: bson.D{{Key: "name_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collDeals: {
			{Keys: bson.D{{Key: "scraped_at", Value: -1}}},
		},
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collWishlist: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collOrders: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		collSearchHistory: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "ts", Value: -1}}},
			{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "ts", Value: -1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return infra.WrapRepoErr("failed to create indexes on "+coll, err)
		}
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
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
