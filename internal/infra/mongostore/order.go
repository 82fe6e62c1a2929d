package mongostore

import (
	"context"
	"errors"
	"time"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderDoc struct {
	ID                string     `bson:"_id"`
	UserID            string     `bson:"user_id"`
	OrderID           string     `bson:"order_id"`
	ProductName       string     `bson:"product_name"`
	Platform          string     `bson:"platform"`
	PurchaseDate      time.Time  `bson:"purchase_date"`
	Status            string     `bson:"status"`
	OrderURL          string     `bson:"order_url"`
	LastStatusCheckAt *time.Time `bson:"last_status_check_at,omitempty"`
	CreatedAt         time.Time  `bson:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at"`
}

func toOrderDoc(o *order.Order) orderDoc {
	return orderDoc{
		ID:                o.ID.String(),
		UserID:            o.UserID.String(),
		OrderID:           o.OrderID,
		ProductName:       o.ProductName,
		Platform:          o.Platform,
		PurchaseDate:      o.PurchaseDate,
		Status:            o.Status,
		OrderURL:          o.OrderURL,
		LastStatusCheckAt: o.LastStatusCheckAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (d orderDoc) toDomain() (*order.Order, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	return &order.Order{
		ID:                id,
		UserID:            userID,
		OrderID:           d.OrderID,
		ProductName:       d.ProductName,
		Platform:          d.Platform,
		PurchaseDate:      d.PurchaseDate.UTC(),
		Status:            d.Status,
		OrderURL:          d.OrderURL,
		LastStatusCheckAt: utcPtr(d.LastStatusCheckAt),
		CreatedAt:         d.CreatedAt.UTC(),
		UpdatedAt:         d.UpdatedAt.UTC(),
	}, nil
}

type OrderStore struct {
	coll *mongo.Collection
}

func (s *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var doc orderDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.NotFound("order not found")
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	o, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order document", err)
	}
	return o, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode orders", err)
	}
	out := make([]*order.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt order document", err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *OrderStore) Insert(ctx context.Context, o *order.Order) error {
	if _, err := s.coll.InsertOne(ctx, toOrderDoc(o)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

func (s *OrderStore) Update(ctx context.Context, o *order.Order) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": o.ID.String()}, toOrderDoc(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if res.MatchedCount == 0 {
		return infra.NotFound("order not found")
	}
	return nil
}

func (s *OrderStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.String(), "user_id": userID.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if res.DeletedCount == 0 {
		return infra.NotFound("order not found")
	}
	return nil
}
