package response

import (
	"time"

	"shopcompare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordSearchResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

type SearchHistoryResponse struct {
	Query       string     `json:"query"`
	Timestamp   time.Time  `json:"timestamp"`
	ProductID   *uuid.UUID `json:"productId,omitempty"`
	ProductName string     `json:"productName,omitempty"`
}

func FromSearchHistoryViews(views []*queries.SearchHistoryView) []SearchHistoryResponse {
	out := make([]SearchHistoryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, SearchHistoryResponse{
			Query:       v.Query,
			Timestamp:   v.Timestamp,
			ProductID:   v.ProductID,
			ProductName: v.ProductName,
		})
	}
	return out
}
