package queries

import (
	"time"

	"shopcompare/internal/domain/product"

	"github.com/google/uuid"
)

// WishlistEntryView joins a wishlist item with the cached product it points at.
type WishlistEntryView struct {
	ProductID          uuid.UUID
	Title              string
	ImageURL           string
	CurrentLowestPrice float64
	TargetPrice        *float64
	TargetReached      bool
	Platforms          []product.Platform
	AddedAt            time.Time
}

type SearchHistoryView struct {
	Query       string
	Timestamp   time.Time
	ProductID   *uuid.UUID
	ProductName string
}
