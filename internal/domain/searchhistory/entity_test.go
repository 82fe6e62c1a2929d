//go:build unit

package searchhistory_test

import (
	"testing"
	"time"

	"shopcompare/internal/domain/searchhistory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	userID := uuid.New()

	t.Run("user entry drops the session", func(t *testing.T) {
		e, err := searchhistory.NewEntry("  iphone 15 ", &userID, "sess-1", nil, now)
		require.NoError(t, err)
		assert.Equal(t, "iphone 15", e.Query)
		assert.Equal(t, &userID, e.UserID)
		assert.Empty(t, e.SessionID)
		assert.Equal(t, now, e.Timestamp)
	})

	t.Run("anonymous entry keeps the session", func(t *testing.T) {
		productID := uuid.New()
		e, err := searchhistory.NewEntry("pixel 8", nil, "sess-1", &productID, now)
		require.NoError(t, err)
		assert.Nil(t, e.UserID)
		assert.Equal(t, "sess-1", e.SessionID)
		assert.Equal(t, &productID, e.ProductID)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := searchhistory.NewEntry("  ", &userID, "", nil, now)
		assert.ErrorIs(t, err, searchhistory.ErrEmptyQuery)
	})

	t.Run("no owner", func(t *testing.T) {
		_, err := searchhistory.NewEntry("pixel 8", nil, "", nil, now)
		assert.ErrorIs(t, err, searchhistory.ErrOwnerRequired)
	})
}

func TestIsCommonQuery(t *testing.T) {
	for _, q := range []string{"smartphones", " Laptops ", "DRESSES", "shoes", "electronics"} {
		assert.True(t, searchhistory.IsCommonQuery(q), q)
	}
	for _, q := range []string{"iphone 15", "running shoes", ""} {
		assert.False(t, searchhistory.IsCommonQuery(q), q)
	}
}
