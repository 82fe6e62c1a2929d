package pgstore

import (
	"context"

	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const searchHistoryColumns = `id, query, ts, user_id, session_id, product_id`

type SearchHistoryStore struct {
	db DBTX
}

func (s *SearchHistoryStore) Insert(ctx context.Context, e *searchhistory.Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_history (`+searchHistoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Query, e.Timestamp, pgconv.UUIDPtrToPgtype(e.UserID),
		pgconv.StringToPgtype(e.SessionID), pgconv.UUIDPtrToPgtype(e.ProductID))
	if err != nil {
		return infra.WrapRepoErr("failed to insert search history", err)
	}
	return nil
}

func (s *SearchHistoryStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*searchhistory.Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+searchHistoryColumns+` FROM search_history
		WHERE user_id = $1 ORDER BY ts DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list search history", err)
	}
	return collectEntries(rows)
}

func (s *SearchHistoryStore) ListBySession(ctx context.Context, sessionID string, limit int) ([]*searchhistory.Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+searchHistoryColumns+` FROM search_history
		WHERE user_id IS NULL AND session_id = $1 ORDER BY ts DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list search history", err)
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]*searchhistory.Entry, error) {
	defer rows.Close()
	var out []*searchhistory.Entry
	for rows.Next() {
		var (
			e                 searchhistory.Entry
			userID, productID pgtype.UUID
			sessionID         pgtype.Text
		)
		if err := rows.Scan(&e.ID, &e.Query, &e.Timestamp, &userID, &sessionID, &productID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan search history", err)
		}
		e.UserID = pgconv.UUIDPtrFromPgtype(userID)
		e.ProductID = pgconv.UUIDPtrFromPgtype(productID)
		e.SessionID = pgconv.StringFromPgtype(sessionID)
		e.Timestamp = e.Timestamp.UTC()
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read search history", err)
	}
	return out, nil
}
