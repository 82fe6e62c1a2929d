package mongostore

import (
	"context"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type dealDoc struct {
	ID                 string    `bson:"_id"`
	Name               string    `bson:"name"`
	ImageURL           string    `bson:"image_url,omitempty"`
	OriginalPrice      float64   `bson:"original_price"`
	DealPrice          float64   `bson:"deal_price"`
	DiscountPercentage int       `bson:"discount_percentage"`
	Platform           string    `bson:"platform"`
	ProductURL         string    `bson:"product_url,omitempty"`
	ScrapedAt          time.Time `bson:"scraped_at"`
	// Position within the batch, for a stable order among equal timestamps.
	Seq int `bson:"seq"`
}

type DealStore struct {
	coll *mongo.Collection
}

func (s *DealStore) List(ctx context.Context) ([]*deal.Deal, error) {
	cur, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "scraped_at", Value: -1}, {Key: "seq", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}
	var docs []dealDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode deals", err)
	}

	out := make([]*deal.Deal, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt deal document", err)
		}
		out = append(out, &deal.Deal{
			ID:                 id,
			Name:               d.Name,
			ImageURL:           d.ImageURL,
			OriginalPrice:      d.OriginalPrice,
			DealPrice:          d.DealPrice,
			DiscountPercentage: d.DiscountPercentage,
			Platform:           d.Platform,
			ProductURL:         d.ProductURL,
			ScrapedAt:          d.ScrapedAt.UTC(),
		})
	}
	return out, nil
}

func (s *DealStore) InsertMany(ctx context.Context, deals []*deal.Deal) error {
	if len(deals) == 0 {
		return nil
	}
	docs := make([]any, 0, len(deals))
	for i, d := range deals {
		docs = append(docs, dealDoc{
			ID:                 d.ID.String(),
			Name:               d.Name,
			ImageURL:           d.ImageURL,
			OriginalPrice:      d.OriginalPrice,
			DealPrice:          d.DealPrice,
			DiscountPercentage: d.DiscountPercentage,
			Platform:           d.Platform,
			ProductURL:         d.ProductURL,
			ScrapedAt:          d.ScrapedAt,
			Seq:                i,
		})
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("deal already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert deals", err)
	}
	return nil
}

func (s *DealStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"scraped_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired deals", err)
	}
	return res.DeletedCount, nil
}
