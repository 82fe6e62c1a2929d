package mongostore

import (
	"context"
	"time"

	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type searchHistoryDoc struct {
	ID        string    `bson:"_id"`
	Query     string    `bson:"query"`
	Timestamp time.Time `bson:"ts"`
	UserID    *string   `bson:"user_id"`
	SessionID string    `bson:"session_id,omitempty"`
	ProductID *string   `bson:"product_id,omitempty"`
}

type SearchHistoryStore struct {
	coll *mongo.Collection
}

func (s *SearchHistoryStore) Insert(ctx context.Context, e *searchhistory.Entry) error {
	_, err := s.coll.InsertOne(ctx, searchHistoryDoc{
		ID:        e.ID.String(),
		Query:     e.Query,
		Timestamp: e.Timestamp,
		UserID:    uuidString(e.UserID),
		SessionID: e.SessionID,
		ProductID: uuidString(e.ProductID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert search history", err)
	}
	return nil
}

func (s *SearchHistoryStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*searchhistory.Entry, error) {
	return s.list(ctx, bson.M{"user_id": userID.String()}, limit)
}

func (s *SearchHistoryStore) ListBySession(ctx context.Context, sessionID string, limit int) ([]*searchhistory.Entry, error) {
	return s.list(ctx, bson.M{"user_id": nil, "session_id": sessionID}, limit)
}

func (s *SearchHistoryStore) list(ctx context.Context, filter bson.M, limit int) ([]*searchhistory.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list search history", err)
	}
	var docs []searchHistoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode search history", err)
	}

	out := make([]*searchhistory.Entry, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt search history document", err)
		}
		e := &searchhistory.Entry{
			ID:        id,
			Query:     d.Query,
			Timestamp: d.Timestamp.UTC(),
			SessionID: d.SessionID,
		}
		if e.UserID, err = parseUUIDPtr(d.UserID); err != nil {
			return nil, infra.WrapRepoErr("corrupt search history document", err)
		}
		if e.ProductID, err = parseUUIDPtr(d.ProductID); err != nil {
			return nil, infra.WrapRepoErr("corrupt search history document", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseUUIDPtr(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
