package mongostore

import (
	"context"
	"errors"
	"time"

	"shopcompare/internal/domain/wishlist"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type wishlistDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	ProductID   string    `bson:"product_id"`
	TargetPrice *float64  `bson:"target_price,omitempty"`
	AddedAt     time.Time `bson:"added_at"`
}

func (d wishlistDoc) toDomain() (*wishlist.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(d.ProductID)
	if err != nil {
		return nil, err
	}
	return &wishlist.Item{
		ID:          id,
		UserID:      userID,
		ProductID:   productID,
		TargetPrice: d.TargetPrice,
		AddedAt:     d.AddedAt.UTC(),
	}, nil
}

type WishlistStore struct {
	coll *mongo.Collection
}

func (s *WishlistStore) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*wishlist.Item, error) {
	var doc wishlistDoc
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID.String(), "product_id": productID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.NotFound("wishlist item not found")
		}
		return nil, infra.WrapRepoErr("failed to find wishlist item", err)
	}
	item, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt wishlist document", err)
	}
	return item, nil
}

func (s *WishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*wishlist.Item, error) {
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID.String()},
		options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist", err)
	}
	var docs []wishlistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode wishlist", err)
	}
	out := make([]*wishlist.Item, 0, len(docs))
	for _, d := range docs {
		item, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt wishlist document", err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *WishlistStore) Insert(ctx context.Context, item *wishlist.Item) error {
	_, err := s.coll.InsertOne(ctx, wishlistDoc{
		ID:          item.ID.String(),
		UserID:      item.UserID.String(),
		ProductID:   item.ProductID.String(),
		TargetPrice: item.TargetPrice,
		AddedAt:     item.AddedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("wishlist item already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert wishlist item", err)
	}
	return nil
}

func (s *WishlistStore) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"user_id": userID.String(), "product_id": productID.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete wishlist item", err)
	}
	if res.DeletedCount == 0 {
		return infra.NotFound("wishlist item not found")
	}
	return nil
}
