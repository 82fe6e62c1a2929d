//go:build unit

package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/infra/memstore"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/catalog"
	"shopcompare/tests/common/builder"
	sharedmock "shopcompare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

var testPolicy = catalog.Policy{
	ProductFreshness: time.Hour,
	DealRecent:       6 * time.Hour,
	DealRetention:    24 * time.Hour,
}

type lookup struct {
	resource string
	hit      bool
}

// recordingObserver keeps every cache outcome for assertions.
type recordingObserver struct {
	mu        sync.Mutex
	lookups   []lookup
	refreshed []int
	fallbacks []string
}

func (o *recordingObserver) CacheLookup(resource string, hit bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lookups = append(o.lookups, lookup{resource, hit})
}

func (o *recordingObserver) DealsRefreshed(count int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.refreshed = append(o.refreshed, count)
}

func (o *recordingObserver) ProviderFallback(resource string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbacks = append(o.fallbacks, resource)
}

type ProductSearchTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	provider *sharedmock.MockSearchProvider
	store    *memstore.Store
	clock    *clock.MockClock
	observer *recordingObserver
	uc       catalog.ProductSearch
}

func (s *ProductSearchTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.provider = sharedmock.NewMockSearchProvider(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(start)
	s.observer = &recordingObserver{}
	s.uc = catalog.NewProductSearch(s.store, s.provider, s.clock, s.observer, testPolicy)
}

func (s *ProductSearchTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductSearchSuite(t *testing.T) {
	suite.Run(t, new(ProductSearchTestSuite))
}

func iphoneObservations() []product.Observation {
	return []product.Observation{
		builder.Observation("Apple iPhone 15 (128 GB) - Black", "Amazon", 79900),
		builder.Observation("Apple iPhone 15 (128 GB) - Blue", "Flipkart", 78999),
		builder.Observation("Apple iPhone 15 Plus (256 GB) - Blue", "Croma", 99900),
		builder.Observation("Apple iPhone 15 Pro (128 GB) - Natural Titanium", "Amazon", 134900),
	}
}

func (s *ProductSearchTestSuite) TestSearchProducts_ColdCacheScrapesOnce() {
	s.provider.EXPECT().Search(gomock.Any(), "iphone 15").Return(iphoneObservations(), nil).Times(1)

	results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
	s.Require().NoError(err)
	s.Require().Len(results, 4)

	for _, r := range results {
		s.Require().Len(r.Product.Platforms, 1, r.Product.Name)
		history := r.Product.Platforms[0].PriceHistory
		s.Require().Len(history, 1)
		s.Equal(start, history[0].Date)
		s.Equal(start, r.Product.LastScrapedAt)
	}
	s.Equal("Apple iPhone 15 (128 GB) - Black", results[0].Product.Name)
	s.Equal("Amazon", results[0].Product.Platforms[0].Name)

	s.Equal(78999.0, results[1].LowestPrice)
	s.Equal([]bool{false, true, false, false}, bestValues(results))

	stored, err := s.store.Products().SearchByText(s.ctx, "iphone 15")
	s.Require().NoError(err)
	s.Len(stored, 4)
	s.Equal([]lookup{{"product", false}}, s.observer.lookups)
}

func (s *ProductSearchTestSuite) TestSearchProducts_SameTitleInOneResponseUpdatesInPlace() {
	s.Run("another store replaces the platform list", func() {
		s.provider.EXPECT().Search(gomock.Any(), "pixel 8").Return([]product.Observation{
			builder.Observation("Google Pixel 8 (Obsidian, 128 GB)", "Amazon", 75999),
			builder.Observation("Google Pixel 8 (Obsidian, 128 GB)", "Flipkart", 72999),
		}, nil).Times(1)

		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "pixel 8"})
		s.Require().NoError(err)
		s.Require().Len(results, 1)

		got := results[0].Product
		s.Require().Len(got.Platforms, 1)
		s.Equal("Flipkart", got.Platforms[0].Name)
		s.Equal([]product.PricePoint{{Price: 72999, Date: start}}, got.Platforms[0].PriceHistory)

		stored, err := s.store.Products().SearchByText(s.ctx, "pixel 8")
		s.Require().NoError(err)
		s.Len(stored, 1)
	})

	s.Run("the same store keeps both observations", func() {
		s.provider.EXPECT().Search(gomock.Any(), "airpods").Return([]product.Observation{
			builder.Observation("Apple AirPods Pro (2nd Gen)", "Amazon", 24900),
			builder.Observation("Apple AirPods Pro (2nd Gen)", "Amazon", 22900),
		}, nil).Times(1)

		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "airpods"})
		s.Require().NoError(err)
		s.Require().Len(results, 1)

		amazon := results[0].Product.Platforms
		s.Require().Len(amazon, 1)
		s.Equal(22900.0, amazon[0].Price)
		s.Equal([]product.PricePoint{
			{Price: 24900, Date: start},
			{Price: 22900, Date: start},
		}, amazon[0].PriceHistory)
	})
}

func (s *ProductSearchTestSuite) TestSearchProducts_RepeatMultiWordQueryHitsCache() {
	s.provider.EXPECT().Search(gomock.Any(), "samsung phone").Return([]product.Observation{
		builder.Observation("Samsung Galaxy S24 5G (Onyx Black, 256 GB)", "Amazon", 74999),
		builder.Observation("Samsung Galaxy A55 5G", "Flipkart", 39999),
	}, nil).Times(1)

	first, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "samsung phone"})
	s.Require().NoError(err)
	s.Require().Len(first, 2)

	s.clock.Add(5 * time.Minute)
	second, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "  Samsung   Phone "})
	s.Require().NoError(err)

	s.Equal(resultIDs(first), resultIDs(second))
	for _, r := range second {
		s.Len(r.Product.Platforms[0].PriceHistory, 1)
	}
	s.Equal([]lookup{{"product", false}, {"product", true}}, s.observer.lookups)
}

func (s *ProductSearchTestSuite) TestSearchProducts_FreshCacheMakesNoProviderCall() {
	s.provider.EXPECT().Search(gomock.Any(), "iphone 15").Return(iphoneObservations(), nil).Times(1)

	first, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
	s.Require().NoError(err)

	s.clock.Add(30 * time.Minute)
	second, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
	s.Require().NoError(err)

	s.Equal(resultIDs(first), resultIDs(second))
	s.Equal([]lookup{{"product", false}, {"product", true}}, s.observer.lookups)
}

func (s *ProductSearchTestSuite) TestSearchProducts_StaleCacheMergesHistory() {
	cached := builder.NewProductBuilder().WithName("Apple iPhone 15 (128 GB) - Black").
		ScrapedAtTime(start.Add(-2*time.Hour)).
		WithPlatform("Amazon", 81900).
		Build()
	s.Require().NoError(s.store.Products().Insert(s.ctx, cached))

	s.provider.EXPECT().Search(gomock.Any(), "iphone 15").Return([]product.Observation{
		builder.Observation("apple iphone 15 (128 gb) - black", "Amazon", 79900),
	}, nil).Times(1)

	results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
	s.Require().NoError(err)
	s.Require().Len(results, 1)

	got := results[0].Product
	s.Equal(cached.ID, got.ID)
	s.Equal("Apple iPhone 15 (128 GB) - Black", got.Name)
	s.Equal([]product.PricePoint{
		{Price: 81900, Date: start.Add(-2 * time.Hour)},
		{Price: 79900, Date: start},
	}, got.Platforms[0].PriceHistory)
	s.Equal(start, got.LastScrapedAt)
}

func (s *ProductSearchTestSuite) TestSearchProducts_ProviderFailureDegradesToEmpty() {
	s.provider.EXPECT().Search(gomock.Any(), "pixel 8").
		Return(nil, errs.Upstream(errs.New("serp returned 503"))).Times(1)

	results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "pixel 8"})
	s.Require().NoError(err)
	s.Empty(results)
	s.Equal([]string{"product"}, s.observer.fallbacks)
}

func (s *ProductSearchTestSuite) TestSearchProducts_EmptyQuery() {
	_, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "   "})
	s.ErrorIs(err, catalog.ErrEmptyQuery)
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ProductSearchTestSuite) TestSearchProducts_SortAndFilter() {
	s.provider.EXPECT().Search(gomock.Any(), "iphone 15").Return(iphoneObservations(), nil).Times(1)
	_, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
	s.Require().NoError(err)

	s.Run("price descending", func() {
		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15", Sort: catalog.SortPriceDesc})
		s.Require().NoError(err)
		s.Equal([]float64{134900, 99900, 79900, 78999}, lowestPrices(results))
		s.True(results[3].BestValue)
	})

	s.Run("price ascending", func() {
		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15", Sort: catalog.SortPriceAsc})
		s.Require().NoError(err)
		s.Equal([]float64{78999, 79900, 99900, 134900}, lowestPrices(results))
	})

	s.Run("platform allow-list", func() {
		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{
			Query:     "iphone 15",
			Platforms: catalog.ParsePlatformFilter(" Croma, "),
		})
		s.Require().NoError(err)
		s.Require().Len(results, 1)
		s.Equal("Apple iPhone 15 Plus (256 GB) - Blue", results[0].Product.Name)
		s.True(results[0].BestValue)
	})

	s.Run("allow-list entries match case-insensitively", func() {
		results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{
			Query:     "iphone 15",
			Platforms: []string{"FLIPKART", " Croma "},
		})
		s.Require().NoError(err)
		s.Equal([]float64{78999, 99900}, lowestPrices(results))
	})
}

func (s *ProductSearchTestSuite) TestSearchProducts_BestValueTies() {
	s.provider.EXPECT().Search(gomock.Any(), "earbuds").Return([]product.Observation{
		builder.Observation("Boat Airdopes 141 earbuds", "Amazon", 1299),
		builder.Observation("Noise Buds VS104 earbuds", "Flipkart", 1299),
		builder.Observation("Realme Buds T300 earbuds", "Amazon", 2299),
	}, nil).Times(1)

	results, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "earbuds"})
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.True(results[0].BestValue)
	s.True(results[1].BestValue)
	s.False(results[2].BestValue)
}

func (s *ProductSearchTestSuite) TestSearchProducts_ConcurrentMissesShareOneScrape() {
	release := make(chan struct{})
	s.provider.EXPECT().Search(gomock.Any(), "iphone 15").DoAndReturn(
		func(context.Context, string) ([]product.Observation, error) {
			<-release
			return iphoneObservations(), nil
		}).Times(1)

	const callers = 5
	var wg sync.WaitGroup
	var started sync.WaitGroup
	results := make([][]uuid.UUID, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		started.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			r, err := s.uc.SearchProducts(s.ctx, catalog.SearchParams{Query: "iphone 15"})
			s.NoError(err)
			results[i] = resultIDs(r)
		}(i)
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	stored, err := s.store.Products().SearchByText(s.ctx, "iphone 15")
	s.Require().NoError(err)
	s.Len(stored, 4)
	for _, r := range results {
		s.Len(r, 4)
	}
}

func (s *ProductSearchTestSuite) TestGetProductDetails() {
	p := builder.NewProductBuilder().ScrapedAtTime(start).
		WithPlatform("Amazon", 79900).
		WithPlatform("Flipkart", 78999).
		Build()
	s.Require().NoError(s.store.Products().Insert(s.ctx, p))

	s.clock.Add(time.Hour)
	got, err := s.uc.GetProductDetails(s.ctx, p.ID)
	s.Require().NoError(err)

	for _, pl := range got.Platforms {
		s.Require().Len(pl.PriceHistory, 2)
		s.Equal(start.Add(time.Hour), pl.PriceHistory[1].Date)
		s.Equal(pl.Price, pl.PriceHistory[1].Price)
	}

	_, err = s.uc.GetProductDetails(s.ctx, p.ID)
	s.Require().NoError(err)
	stored, err := s.store.Products().FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Len(stored.Platforms[0].PriceHistory, 3)
}

func (s *ProductSearchTestSuite) TestGetProductDetails_NotFound() {
	_, err := s.uc.GetProductDetails(s.ctx, uuid.New())
	s.ErrorIs(err, catalog.ErrProductNotFound)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.SortOrder
		wantErr bool
	}{
		{"", catalog.SortNone, false},
		{"price_asc", catalog.SortPriceAsc, false},
		{" PRICE_DESC ", catalog.SortPriceDesc, false},
		{"rating", catalog.SortNone, true},
	}
	for _, tt := range tests {
		got, err := catalog.ParseSort(tt.in)
		if tt.wantErr {
			if !errs.Is(err, errs.ErrValidation) {
				t.Errorf("ParseSort(%q) error = %v, want validation error", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSort(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func resultIDs(results []*catalog.ProductResult) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		out = append(out, r.Product.ID)
	}
	return out
}

func lowestPrices(results []*catalog.ProductResult) []float64 {
	out := make([]float64, 0, len(results))
	for _, r := range results {
		out = append(out, r.LowestPrice)
	}
	return out
}

func bestValues(results []*catalog.ProductResult) []bool {
	out := make([]bool, 0, len(results))
	for _, r := range results {
		out = append(out, r.BestValue)
	}
	return out
}
