package searchhistory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyQuery    = errors.New("query is required")
	ErrOwnerRequired = errors.New("either user or session is required")
)

// Generic category searches are not worth remembering.
var commonQueries = map[string]struct{}{
	"smartphones": {},
	"laptops":     {},
	"dresses":     {},
	"shoes":       {},
	"electronics": {},
}

func IsCommonQuery(q string) bool {
	_, ok := commonQueries[strings.ToLower(strings.TrimSpace(q))]
	return ok
}

// Entry belongs to either a user or an anonymous session, never both.
type Entry struct {
	ID        uuid.UUID
	Query     string
	Timestamp time.Time
	UserID    *uuid.UUID
	SessionID string
	ProductID *uuid.UUID
}

func NewEntry(query string, userID *uuid.UUID, sessionID string, productID *uuid.UUID, now time.Time) (*Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if userID == nil && sessionID == "" {
		return nil, ErrOwnerRequired
	}
	if userID != nil {
		sessionID = ""
	}
	return &Entry{
		ID:        uuid.New(),
		Query:     query,
		Timestamp: now,
		UserID:    userID,
		SessionID: sessionID,
		ProductID: productID,
	}, nil
}
