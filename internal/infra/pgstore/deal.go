package pgstore

import (
	"context"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type DealStore struct {
	db DBTX
}

// List returns newest first; seq keeps insertion order within one refresh.
func (s *DealStore) List(ctx context.Context) ([]*deal.Deal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, image_url, original_price, deal_price, discount_percentage,
			platform, product_url, scraped_at
		FROM daily_deals
		ORDER BY scraped_at DESC, seq`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}
	defer rows.Close()

	var out []*deal.Deal
	for rows.Next() {
		var (
			d                    deal.Deal
			imageURL, productURL pgtype.Text
		)
		if err := rows.Scan(&d.ID, &d.Name, &imageURL, &d.OriginalPrice, &d.DealPrice,
			&d.DiscountPercentage, &d.Platform, &productURL, &d.ScrapedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal", err)
		}
		d.ImageURL = pgconv.StringFromPgtype(imageURL)
		d.ProductURL = pgconv.StringFromPgtype(productURL)
		d.ScrapedAt = d.ScrapedAt.UTC()
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read deals", err)
	}
	return out, nil
}

func (s *DealStore) InsertMany(ctx context.Context, deals []*deal.Deal) error {
	if len(deals) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, d := range deals {
		batch.Queue(`
			INSERT INTO daily_deals (id, name, image_url, original_price, deal_price,
				discount_percentage, platform, product_url, scraped_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			d.ID, d.Name, pgconv.StringToPgtype(d.ImageURL), d.OriginalPrice, d.DealPrice,
			d.DiscountPercentage, d.Platform, pgconv.StringToPgtype(d.ProductURL), d.ScrapedAt)
	}

	// A batch sent outside a transaction runs as one implicit transaction.
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("deal already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert deals", err)
	}
	return nil
}

func (s *DealStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM daily_deals WHERE scraped_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired deals", err)
	}
	return tag.RowsAffected(), nil
}
