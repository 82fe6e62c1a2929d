package commands

//go:generate mockgen -source=search_history.go -destination=../../../tests/mock/commands/search_history.go -package=commandsmock

import (
	"context"

	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

type SearchHistoryCommands interface {
	Record(ctx context.Context, in RecordSearchInput) (*RecordSearchResult, error)
}

type searchHistoryCommandsImpl struct {
	history shared.SearchHistoryStore
	clock   clock.Clock
}

func NewSearchHistoryCommands(store shared.Store, clk clock.Clock) SearchHistoryCommands {
	return &searchHistoryCommandsImpl{
		history: store.SearchHistory(),
		clock:   clk,
	}
}

// Record skips generic category searches without touching the session. An
// anonymous caller without a session gets a new session id once something is
// recorded.
func (c *searchHistoryCommandsImpl) Record(ctx context.Context, in RecordSearchInput) (*RecordSearchResult, error) {
	if searchhistory.IsCommonQuery(in.Query) {
		return &RecordSearchResult{Recorded: false}, nil
	}

	sessionID := in.SessionID
	if in.UserID != nil {
		sessionID = ""
	} else if sessionID == "" {
		sessionID = uuid.NewString()
	}

	entry, err := searchhistory.NewEntry(in.Query, in.UserID, sessionID, in.ProductID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.history.Insert(ctx, entry); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "insert search history"), errs.ErrInternal)
	}
	return &RecordSearchResult{Recorded: true, SessionID: sessionID}, nil
}
