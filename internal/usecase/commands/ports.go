package commands

import (
	"time"

	"github.com/google/uuid"
)

// Inputs are plain values so handlers never hand request DTOs to the write side.

type CreateOrderInput struct {
	UserID       uuid.UUID
	OrderID      string
	ProductName  string
	Platform     string
	PurchaseDate time.Time
	OrderURL     string
}

type RecordSearchInput struct {
	Query     string
	UserID    *uuid.UUID
	SessionID string
	ProductID *uuid.UUID
}

type RecordSearchResult struct {
	Recorded bool
	// SessionID is set for anonymous callers, including a newly issued one.
	SessionID string
}
