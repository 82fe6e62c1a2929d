package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PricePoint struct {
	Price float64
	Date  time.Time
}

// Platform is one store's offer for a product. PriceHistory is append-only
// and chronological; repeated observations of the same price are kept.
type Platform struct {
	Name         string
	URL          string
	Price        float64
	Discount     float64
	PriceWithTax float64
	DeliveryInfo string
	SellerRating *float64
	PriceHistory []PricePoint
}

type Product struct {
	ID                uuid.UUID
	Name              string
	Description       string
	ImageURL          string
	Brand             string
	Rating            *float64
	ReviewCount       int
	Features          []string
	Keywords          []string
	Platforms         []Platform
	LastScrapedAt     time.Time
	LastPriceChangeAt *time.Time
	CreatedAt         time.Time
}

// Observation is a single offer seen at the search provider.
type Observation struct {
	Title       string
	Description string
	ImageURL    string
	Store       string
	URL         string
	Price       float64
	OldPrice    float64
	Rating      *float64
	ReviewCount int
	Delivery    string
}

// FromObservation builds a product with exactly one platform carrying one
// price point dated now.
func FromObservation(o Observation, now time.Time) (*Product, error) {
	name := NormalizeName(o.Title)
	if name == "" {
		return nil, ErrEmptyName
	}
	if o.Price < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   o.Description,
		ImageURL:      o.ImageURL,
		Brand:         GuessBrand(name),
		Rating:        o.Rating,
		ReviewCount:   o.ReviewCount,
		Keywords:      BuildKeywords(name),
		Platforms:     []Platform{NewPlatform(o, now)},
		LastScrapedAt: now,
		CreatedAt:     now,
	}, nil
}

func NewPlatform(o Observation, now time.Time) Platform {
	store := strings.TrimSpace(o.Store)
	if store == "" {
		store = UnknownStore
	}
	discount := 0.0
	if o.OldPrice > o.Price {
		discount = o.OldPrice - o.Price
	}
	return Platform{
		Name:         store,
		URL:          o.URL,
		Price:        o.Price,
		Discount:     discount,
		PriceWithTax: o.Price,
		DeliveryInfo: strings.TrimSpace(o.Delivery),
		PriceHistory: []PricePoint{{Price: o.Price, Date: now}},
	}
}

// LowestPrice reports the minimum current price across platforms. ok is false
// for a product without platforms.
func (p *Product) LowestPrice() (price float64, ok bool) {
	for i, pl := range p.Platforms {
		if i == 0 || pl.Price < price {
			price = pl.Price
		}
	}
	return price, len(p.Platforms) > 0
}

// Touch moves LastScrapedAt forward; it never moves backwards.
func (p *Product) Touch(now time.Time) {
	if now.After(p.LastScrapedAt) {
		p.LastScrapedAt = now
	}
}

func (p *Product) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(p.LastScrapedAt) < window
}

// RecordObservation appends the current price of every platform to its
// history.
func (p *Product) RecordObservation(now time.Time) {
	for i := range p.Platforms {
		pl := &p.Platforms[i]
		pl.PriceHistory = append(pl.PriceHistory, PricePoint{Price: pl.Price, Date: now})
	}
	p.LastPriceChangeAt = &now
}

// MergeScrape replaces the platform list with a fresh scrape. Platforms that
// were already known keep their history and the fresh points are appended.
func (p *Product) MergeScrape(fresh *Product, now time.Time) {
	previous := make(map[string][]PricePoint, len(p.Platforms))
	for _, pl := range p.Platforms {
		previous[strings.ToLower(pl.Name)] = pl.PriceHistory
	}

	merged := make([]Platform, 0, len(fresh.Platforms))
	for _, pl := range fresh.Platforms {
		if history, ok := previous[strings.ToLower(pl.Name)]; ok {
			combined := make([]PricePoint, 0, len(history)+len(pl.PriceHistory))
			combined = append(combined, history...)
			pl.PriceHistory = append(combined, pl.PriceHistory...)
		}
		merged = append(merged, pl)
	}
	p.Platforms = merged

	if fresh.ImageURL != "" {
		p.ImageURL = fresh.ImageURL
	}
	if fresh.Description != "" {
		p.Description = fresh.Description
	}
	if fresh.Rating != nil {
		p.Rating = fresh.Rating
	}
	if fresh.ReviewCount > 0 {
		p.ReviewCount = fresh.ReviewCount
	}
	if p.Brand == "" {
		p.Brand = fresh.Brand
	}
	p.Keywords = mergeKeywords(p.Keywords, fresh.Keywords)
	p.Touch(now)
}

// AddKeywords appends search terms not already present.
func (p *Product) AddKeywords(keywords ...string) {
	p.Keywords = mergeKeywords(p.Keywords, keywords)
}

// SoldOnAny reports whether any platform name is in the lowercased allow-list.
func (p *Product) SoldOnAny(allow map[string]struct{}) bool {
	for _, pl := range p.Platforms {
		if _, ok := allow[strings.ToLower(pl.Name)]; ok {
			return true
		}
	}
	return false
}

// MatchesText is the in-process equivalent of the store text search:
// case-insensitive substring on the name or any keyword.
func (p *Product) MatchesText(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}
