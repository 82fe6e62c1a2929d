package mongostore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxModifyAttempts = 5

type pricePointDoc struct {
	Price float64   `bson:"price"`
	Date  time.Time `bson:"date"`
}

type platformDoc struct {
	Name         string          `bson:"name"`
	URL          string          `bson:"url"`
	Price        float64         `bson:"price"`
	Discount     float64         `bson:"discount"`
	PriceWithTax float64         `bson:"price_with_tax"`
	DeliveryInfo string          `bson:"delivery_info,omitempty"`
	SellerRating *float64        `bson:"seller_rating,omitempty"`
	PriceHistory []pricePointDoc `bson:"price_history"`
}

// productDoc carries a version counter for optimistic updates.
type productDoc struct {
	ID                string        `bson:"_id"`
	Name              string        `bson:"name"`
	NameKey           string        `bson:"name_key"`
	Description       string        `bson:"description,omitempty"`
	ImageURL          string        `bson:"image_url,omitempty"`
	Brand             string        `bson:"brand,omitempty"`
	Rating            *float64      `bson:"rating,omitempty"`
	ReviewCount       int           `bson:"review_count"`
	Features          []string      `bson:"features"`
	Keywords          []string      `bson:"keywords"`
	Platforms         []platformDoc `bson:"platforms"`
	LastScrapedAt     time.Time     `bson:"last_scraped_at"`
	LastPriceChangeAt *time.Time    `bson:"last_price_change_at,omitempty"`
	CreatedAt         time.Time     `bson:"created_at"`
	Version           int64         `bson:"version"`
}

func toProductDoc(p *product.Product, version int64) productDoc {
	platforms := make([]platformDoc, 0, len(p.Platforms))
	for _, pl := range p.Platforms {
		history := make([]pricePointDoc, 0, len(pl.PriceHistory))
		for _, pp := range pl.PriceHistory {
			history = append(history, pricePointDoc{Price: pp.Price, Date: pp.Date})
		}
		platforms = append(platforms, platformDoc{
			Name:         pl.Name,
			URL:          pl.URL,
			Price:        pl.Price,
			Discount:     pl.Discount,
			PriceWithTax: pl.PriceWithTax,
			DeliveryInfo: pl.DeliveryInfo,
			SellerRating: pl.SellerRating,
			PriceHistory: history,
		})
	}
	return productDoc{
		ID:                p.ID.String(),
		Name:              p.Name,
		NameKey:           product.Key(p.Name),
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Brand:             p.Brand,
		Rating:            p.Rating,
		ReviewCount:       p.ReviewCount,
		Features:          nonNil(p.Features),
		Keywords:          nonNil(p.Keywords),
		Platforms:         platforms,
		LastScrapedAt:     p.LastScrapedAt,
		LastPriceChangeAt: p.LastPriceChangeAt,
		CreatedAt:         p.CreatedAt,
		Version:           version,
	}
}

func (d productDoc) toDomain() (*product.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	platforms := make([]product.Platform, 0, len(d.Platforms))
	for _, pl := range d.Platforms {
		history := make([]product.PricePoint, 0, len(pl.PriceHistory))
		for _, pp := range pl.PriceHistory {
			history = append(history, product.PricePoint{Price: pp.Price, Date: pp.Date.UTC()})
		}
		platforms = append(platforms, product.Platform{
			Name:         pl.Name,
			URL:          pl.URL,
			Price:        pl.Price,
			Discount:     pl.Discount,
			PriceWithTax: pl.PriceWithTax,
			DeliveryInfo: pl.DeliveryInfo,
			SellerRating: pl.SellerRating,
			PriceHistory: history,
		})
	}
	return &product.Product{
		ID:                id,
		Name:              d.Name,
		Description:       d.Description,
		ImageURL:          d.ImageURL,
		Brand:             d.Brand,
		Rating:            d.Rating,
		ReviewCount:       d.ReviewCount,
		Features:          d.Features,
		Keywords:          d.Keywords,
		Platforms:         platforms,
		LastScrapedAt:     d.LastScrapedAt.UTC(),
		LastPriceChangeAt: utcPtr(d.LastPriceChangeAt),
		CreatedAt:         d.CreatedAt.UTC(),
	}, nil
}

type ProductStore struct {
	coll *mongo.Collection
}

func (s *ProductStore) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	doc, err := s.findOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return nil, err
	}
	return decodeProduct(doc)
}

func (s *ProductStore) FindByName(ctx context.Context, name string) (*product.Product, error) {
	doc, err := s.findOne(ctx, bson.M{"name_key": product.Key(name)})
	if err != nil {
		return nil, err
	}
	return decodeProduct(doc)
}

func (s *ProductStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	return s.findMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
}

func (s *ProductStore) SearchByText(ctx context.Context, query string) ([]*product.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	return s.findMany(ctx, bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"keywords": pattern},
	}})
}

func (s *ProductStore) Insert(ctx context.Context, p *product.Product) error {
	if _, err := s.coll.InsertOne(ctx, toProductDoc(p, 1)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("product already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

// Modify retries when another writer bumped the version between read and
// replace.
func (s *ProductStore) Modify(ctx context.Context, id uuid.UUID, fn func(*product.Product) error) (*product.Product, error) {
	for attempt := 0; attempt < maxModifyAttempts; attempt++ {
		doc, err := s.findOne(ctx, bson.M{"_id": id.String()})
		if err != nil {
			return nil, err
		}
		p, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		if err := fn(p); err != nil {
			return nil, err
		}

		res, err := s.coll.ReplaceOne(ctx,
			bson.M{"_id": doc.ID, "version": doc.Version},
			toProductDoc(p, doc.Version+1))
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, infra.WrapRepoErr("product name already taken", err, infra.KindDuplicateKey)
			}
			return nil, infra.WrapRepoErr("failed to replace product", err)
		}
		if res.MatchedCount == 1 {
			return p, nil
		}
	}
	return nil, infra.WrapRepoErr("product modified concurrently", nil, infra.KindConflict)
}

func (s *ProductStore) findOne(ctx context.Context, filter bson.M) (*productDoc, error) {
	var doc productDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.NotFound("product not found")
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return &doc, nil
}

func (s *ProductStore) findMany(ctx context.Context, filter bson.M) ([]*product.Product, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode products", err)
	}
	out := make([]*product.Product, 0, len(docs))
	for i := range docs {
		p, err := decodeProduct(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeProduct(doc *productDoc) (*product.Product, error) {
	p, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product document", err)
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
