//go:build e2e

package catalog_test

import (
	"net/http"
	"net/url"
	"testing"

	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/tests/common/fakeupstream"
	"shopcompare/tests/common/httptest"
	"shopcompare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	searchURL  = "/api/products/search"
	productURL = "/api/products/"
	dealsURL   = "/api/deals"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) seedIPhones() {
	s.Upstream.SetResults("iphone 15",
		fakeupstream.Offer("Apple iPhone 15 (128 GB) - Black", "Amazon", 79900),
		fakeupstream.Offer("Apple iPhone 15 (128 GB) - Blue", "Flipkart", 78999),
		fakeupstream.Offer("Apple iPhone 15 Plus (128 GB) - Pink", "Croma", 89900),
	)
}

func (s *catalogSuite) search(query string, extra url.Values) []resdto.ProductSearchItem {
	params := url.Values{"q": {query}}
	for k, v := range extra {
		params[k] = v
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, searchURL+"?"+params.Encode(), nil, "")

	var items []resdto.ProductSearchItem
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
	return items
}

func (s *catalogSuite) TestSearch() {
	s.Run("cold cache stores one single-platform record per offer", func() {
		s.seedIPhones()

		items := s.search("iPhone 15", nil)
		s.Require().Len(items, 3)
		s.Equal(1, s.Upstream.SearchCalls())

		byName := map[string]resdto.ProductSearchItem{}
		for _, it := range items {
			s.Len(it.Platforms, 1, it.Name)
			byName[it.Name] = it
		}
		blue := byName["Apple iPhone 15 (128 GB) - Blue"]
		s.Equal(78999.0, blue.LowestPrice)
		s.True(blue.BestValue)
		s.Equal("Apple", blue.Brand)
		s.False(byName["Apple iPhone 15 (128 GB) - Black"].BestValue)
	})

	s.Run("an offer repeating a title updates the same record", func() {
		s.Upstream.SetResults("pixel 8",
			fakeupstream.Offer("Google Pixel 8 (Obsidian, 128 GB)", "Amazon", 75999),
			fakeupstream.Offer("Google Pixel 8 (Obsidian, 128 GB)", "Flipkart", 72999),
		)

		items := s.search("pixel 8", nil)
		s.Require().Len(items, 1)
		s.Require().Len(items[0].Platforms, 1)
		s.Equal(72999.0, items[0].LowestPrice)
	})

	s.Run("a repeated multi-word query is served from the cache", func() {
		s.Upstream.SetResults("samsung phone",
			fakeupstream.Offer("Samsung Galaxy S24 5G (Onyx Black, 256 GB)", "Amazon", 74999),
			fakeupstream.Offer("Samsung Galaxy A55 5G", "Flipkart", 39999),
		)

		first := s.search("samsung phone", nil)
		s.Require().Len(first, 2)

		second := s.search("Samsung  Phone", nil)
		s.Equal(1, s.Upstream.SearchCalls())
		s.ElementsMatch(productIDs(first), productIDs(second))
	})

	s.Run("fresh cache answers without the provider", func() {
		s.seedIPhones()
		first := s.search("iphone 15", nil)

		second := s.search("iphone 15", nil)
		s.Equal(1, s.Upstream.SearchCalls())
		s.ElementsMatch(productIDs(first), productIDs(second))
	})

	s.Run("sort and platform filter", func() {
		s.seedIPhones()

		desc := s.search("iphone 15", url.Values{"sort": {"price_desc"}})
		s.Require().Len(desc, 3)
		s.Equal([]float64{89900, 79900, 78999}, []float64{desc[0].LowestPrice, desc[1].LowestPrice, desc[2].LowestPrice})

		croma := s.search("iphone 15", url.Values{"platform": {"croma"}})
		s.Require().Len(croma, 1)
		s.Equal("Apple iPhone 15 Plus (128 GB) - Pink", croma[0].Name)

		both := s.search("iphone 15", url.Values{"platform": {"Amazon,FLIPKART"}})
		s.Len(both, 2)

		alias := s.search("iphone 15", url.Values{"platforms": {"croma"}})
		s.Len(alias, 1)
	})

	s.Run("provider failure degrades to an empty list", func() {
		s.Upstream.FailSearches(http.StatusInternalServerError)

		items := s.search("pixel 8", nil)
		s.Empty(items)
		s.Equal(1, s.Upstream.SearchCalls())
	})

	s.Run("no provider results", func() {
		items := s.search("unobtainium", nil)
		s.Empty(items)
	})

	s.Run("missing query", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, searchURL, nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("unknown sort", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, searchURL+"?q=iphone&sort=newest", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func (s *catalogSuite) TestProductDetails() {
	s.Run("each view appends to the price history", func() {
		s.seedIPhones()
		items := s.search("iphone 15", nil)
		s.Require().NotEmpty(items)
		id := items[0].ID

		var p resdto.ProductResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productURL+id.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &p)
		s.Len(p.Platforms[0].PriceHistory, 2)
		s.NotNil(p.LastPriceChangeAt)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productURL+id.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &p)
		s.Len(p.Platforms[0].PriceHistory, 3)
	})

	s.Run("unknown product", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productURL+uuid.NewString(), nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productURL+"42", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func (s *catalogSuite) TestDeals() {
	s.Run("first call refreshes, second reuses the same deals", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dealsURL, nil, "")
		var first []resdto.DealResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		s.Require().NotEmpty(first)

		platforms := map[string]bool{}
		for _, d := range first {
			platforms[d.Platform] = true
			s.GreaterOrEqual(d.OriginalPrice, d.DealPrice)
			s.GreaterOrEqual(d.DiscountPercentage, 0)
		}
		s.Len(platforms, 5)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dealsURL, nil, "")
		var second []resdto.DealResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		s.ElementsMatch(dealIDs(first), dealIDs(second))
	})
}

func productIDs(items []resdto.ProductSearchItem) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func dealIDs(deals []resdto.DealResponse) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.ID)
	}
	return out
}
