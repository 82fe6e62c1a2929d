package pgstore

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, image_url, brand, rating, review_count,
	features, keywords, platforms, last_scraped_at, last_price_change_at, created_at`

type pricePointDoc struct {
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

type platformDoc struct {
	Name         string          `json:"name"`
	URL          string          `json:"url"`
	Price        float64         `json:"price"`
	Discount     float64         `json:"discount"`
	PriceWithTax float64         `json:"priceWithTax"`
	DeliveryInfo string          `json:"deliveryInfo,omitempty"`
	SellerRating *float64        `json:"sellerRating,omitempty"`
	PriceHistory []pricePointDoc `json:"priceHistory"`
}

type ProductStore struct {
	pool *pgxpool.Pool
}

func (s *ProductStore) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("product not found")
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return p, nil
}

func (s *ProductStore) FindByName(ctx context.Context, name string) (*product.Product, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE name_key = $1`, product.Key(name))
	p, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("product not found")
		}
		return nil, infra.WrapRepoErr("failed to find product by name", err)
	}
	return p, nil
}

func (s *ProductStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	return collectProducts(rows)
}

func (s *ProductStore) SearchByText(ctx context.Context, query string) ([]*product.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	pattern := "%" + escapeLike(q) + "%"
	rows, err := s.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE name ILIKE $1 ESCAPE '\'
		   OR EXISTS (SELECT 1 FROM unnest(keywords) AS k WHERE k ILIKE $1 ESCAPE '\')
		ORDER BY created_at, id`, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search products", err)
	}
	return collectProducts(rows)
}

func (s *ProductStore) Insert(ctx context.Context, p *product.Product) error {
	if err := insertProduct(ctx, s.pool, p); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

// Modify locks the row for the duration of fn. Errors from fn are returned
// unchanged.
func (s *ProductStore) Modify(ctx context.Context, id uuid.UUID, fn func(*product.Product) error) (*product.Product, error) {
	var (
		result   *product.Product
		notFound bool
		fnErr    error
	)
	err := withTx(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
		p, err := scanProduct(row)
		if err != nil {
			notFound = pgconv.IsNoRows(err)
			return err
		}
		if fnErr = fn(p); fnErr != nil {
			return fnErr
		}
		if err := updateProduct(ctx, tx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	switch {
	case err == nil:
		return result, nil
	case fnErr != nil:
		return nil, fnErr
	case notFound:
		return nil, infra.NotFound("product not found")
	case isUniqueViolation(err):
		return nil, infra.WrapRepoErr("product name already taken", err, infra.KindDuplicateKey)
	default:
		return nil, infra.WrapRepoErr("failed to modify product", err)
	}
}

func insertProduct(ctx context.Context, db DBTX, p *product.Product) error {
	platforms, err := encodePlatforms(p.Platforms)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `
		INSERT INTO products (id, name, name_key, description, image_url, brand, rating, review_count,
			features, keywords, platforms, last_scraped_at, last_price_change_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Name, product.Key(p.Name),
		pgconv.StringToPgtype(p.Description), pgconv.StringToPgtype(p.ImageURL), pgconv.StringToPgtype(p.Brand),
		pgconv.Float64PtrToPgtype(p.Rating), p.ReviewCount,
		nonNil(p.Features), nonNil(p.Keywords), platforms,
		p.LastScrapedAt, pgconv.TimePtrToPgtype(p.LastPriceChangeAt), p.CreatedAt,
	)
	return err
}

func updateProduct(ctx context.Context, db DBTX, p *product.Product) error {
	platforms, err := encodePlatforms(p.Platforms)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `
		UPDATE products SET name = $2, name_key = $3, description = $4, image_url = $5, brand = $6,
			rating = $7, review_count = $8, features = $9, keywords = $10, platforms = $11,
			last_scraped_at = $12, last_price_change_at = $13
		WHERE id = $1`,
		p.ID, p.Name, product.Key(p.Name),
		pgconv.StringToPgtype(p.Description), pgconv.StringToPgtype(p.ImageURL), pgconv.StringToPgtype(p.Brand),
		pgconv.Float64PtrToPgtype(p.Rating), p.ReviewCount,
		nonNil(p.Features), nonNil(p.Keywords), platforms,
		p.LastScrapedAt, pgconv.TimePtrToPgtype(p.LastPriceChangeAt),
	)
	return err
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p                            product.Product
		description, imageURL, brand pgtype.Text
		rating                       pgtype.Float8
		platforms                    []byte
		lastPriceChangeAt            pgtype.Timestamptz
	)
	err := row.Scan(
		&p.ID, &p.Name, &description, &imageURL, &brand, &rating, &p.ReviewCount,
		&p.Features, &p.Keywords, &platforms, &p.LastScrapedAt, &lastPriceChangeAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Description = pgconv.StringFromPgtype(description)
	p.ImageURL = pgconv.StringFromPgtype(imageURL)
	p.Brand = pgconv.StringFromPgtype(brand)
	p.Rating = pgconv.Float64PtrFromPgtype(rating)
	p.LastPriceChangeAt = pgconv.TimePtrFromPgtype(lastPriceChangeAt)
	p.LastScrapedAt = p.LastScrapedAt.UTC()
	p.CreatedAt = p.CreatedAt.UTC()

	if p.Platforms, err = decodePlatforms(platforms); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	defer rows.Close()
	var out []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return out, nil
}

func encodePlatforms(platforms []product.Platform) ([]byte, error) {
	docs := make([]platformDoc, 0, len(platforms))
	for _, pl := range platforms {
		history := make([]pricePointDoc, 0, len(pl.PriceHistory))
		for _, pp := range pl.PriceHistory {
			history = append(history, pricePointDoc{Price: pp.Price, Date: pp.Date.UTC()})
		}
		docs = append(docs, platformDoc{
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
	return json.Marshal(docs)
}

func decodePlatforms(raw []byte) ([]product.Platform, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var docs []platformDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	out := make([]product.Platform, 0, len(docs))
	for _, d := range docs {
		history := make([]product.PricePoint, 0, len(d.PriceHistory))
		for _, pp := range d.PriceHistory {
			history = append(history, product.PricePoint{Price: pp.Price, Date: pp.Date.UTC()})
		}
		out = append(out, product.Platform{
			Name:         d.Name,
			URL:          d.URL,
			Price:        d.Price,
			Discount:     d.Discount,
			PriceWithTax: d.PriceWithTax,
			DeliveryInfo: d.DeliveryInfo,
			SellerRating: d.SellerRating,
			PriceHistory: history,
		})
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
