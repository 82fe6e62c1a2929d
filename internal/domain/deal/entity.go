package deal

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("deal name is empty")
	ErrInvalidPrices = errors.New("deal prices must not be negative")
)

// Platforms is the fixed list the refresher walks, in display order.
var Platforms = []string{"Amazon", "Flipkart", "Myntra", "Meesho", "Ajio"}

type Deal struct {
	ID                 uuid.UUID
	Name               string
	ImageURL           string
	OriginalPrice      float64
	DealPrice          float64
	DiscountPercentage int
	Platform           string
	ProductURL         string
	ScrapedAt          time.Time
}

// Candidate is a deal offered by a deal source before it is persisted.
type Candidate struct {
	Name          string
	ImageURL      string
	OriginalPrice float64
	DealPrice     float64
	ProductURL    string
}

func New(c Candidate, platform string, now time.Time) (*Deal, error) {
	if c.Name == "" {
		return nil, ErrEmptyName
	}
	if c.OriginalPrice < 0 || c.DealPrice < 0 {
		return nil, ErrInvalidPrices
	}
	return &Deal{
		ID:                 uuid.New(),
		Name:               c.Name,
		ImageURL:           c.ImageURL,
		OriginalPrice:      c.OriginalPrice,
		DealPrice:          c.DealPrice,
		DiscountPercentage: DiscountPercentage(c.OriginalPrice, c.DealPrice),
		Platform:           platform,
		ProductURL:         c.ProductURL,
		ScrapedAt:          now,
	}, nil
}

// DiscountPercentage is round((original-deal)/original*100) clamped to [0,100].
func DiscountPercentage(original, dealPrice float64) int {
	if original <= 0 {
		return 0
	}
	pct := math.Round((original - dealPrice) / original * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return int(pct)
	}
}

func (d *Deal) IsRecent(now time.Time, window time.Duration) bool {
	return now.Sub(d.ScrapedAt) < window
}

// SortByScrapedAtDesc sorts newest first and keeps insertion order for equal
// timestamps.
func SortByScrapedAtDesc(deals []*Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].ScrapedAt.After(deals[j].ScrapedAt)
	})
}
