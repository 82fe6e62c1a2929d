//go:build unit

package deal_test

import (
	"testing"
	"time"

	"shopcompare/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	d, err := deal.New(deal.Candidate{
		Name:          "boAt Rockerz 450",
		OriginalPrice: 3990,
		DealPrice:     1499,
		ProductURL:    "https://www.amazon.in/dp/B07PR1CL3S",
	}, "Amazon", now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, 62, d.DiscountPercentage)
	assert.Equal(t, "Amazon", d.Platform)
	assert.Equal(t, now, d.ScrapedAt)

	_, err = deal.New(deal.Candidate{OriginalPrice: 1, DealPrice: 1}, "Amazon", now)
	assert.ErrorIs(t, err, deal.ErrEmptyName)

	_, err = deal.New(deal.Candidate{Name: "x", OriginalPrice: -1}, "Amazon", now)
	assert.ErrorIs(t, err, deal.ErrInvalidPrices)
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		price    float64
		want     int
	}{
		{"rounds half up", 8, 7, 13},
		{"typical", 1000, 750, 25},
		{"free", 500, 0, 100},
		{"price above original clamps to zero", 100, 120, 0},
		{"zero original", 0, 10, 0},
		{"negative original", -10, 5, 0},
		{"negative deal price clamps to hundred", 100, -50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deal.DiscountPercentage(tt.original, tt.price))
		})
	}
}

func TestIsRecent(t *testing.T) {
	d := &deal.Deal{ScrapedAt: now}
	assert.True(t, d.IsRecent(now.Add(5*time.Hour), 6*time.Hour))
	assert.False(t, d.IsRecent(now.Add(6*time.Hour), 6*time.Hour))
}

func TestSortByScrapedAtDesc(t *testing.T) {
	a := &deal.Deal{Name: "a", ScrapedAt: now}
	b := &deal.Deal{Name: "b", ScrapedAt: now}
	old := &deal.Deal{Name: "old", ScrapedAt: now.Add(-time.Hour)}
	newest := &deal.Deal{Name: "newest", ScrapedAt: now.Add(time.Hour)}

	deals := []*deal.Deal{old, a, newest, b}
	deal.SortByScrapedAtDesc(deals)

	names := make([]string, 0, len(deals))
	for _, d := range deals {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"newest", "a", "b", "old"}, names)
}
