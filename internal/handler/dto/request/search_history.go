package request

import (
	"shopcompare/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordSearchRequest struct {
	Query     string     `json:"query" binding:"required"`
	ProductID *uuid.UUID `json:"productId,omitempty"`
}

func (r RecordSearchRequest) ToInput(userID *uuid.UUID, sessionID string) commands.RecordSearchInput {
	return commands.RecordSearchInput{
		Query:     r.Query,
		UserID:    userID,
		SessionID: sessionID,
		ProductID: r.ProductID,
	}
}
