//go:build unit

package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/infra/memstore"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/catalog"
	sharedmock "shopcompare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DailyDealsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	source   *sharedmock.MockDealSource
	store    *memstore.Store
	clock    *clock.MockClock
	observer *recordingObserver
	uc       catalog.DailyDeals
}

func (s *DailyDealsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.source = sharedmock.NewMockDealSource(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(start)
	s.observer = &recordingObserver{}
	s.uc = catalog.NewDailyDeals(s.store, s.source, s.clock, s.observer, testPolicy)
}

func (s *DailyDealsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDailyDealsSuite(t *testing.T) {
	suite.Run(t, new(DailyDealsTestSuite))
}

// expectAllPlatforms answers every platform with two candidates named after it.
func (s *DailyDealsTestSuite) expectAllPlatforms(times int) {
	s.source.EXPECT().FetchDeals(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, platform string) ([]deal.Candidate, error) {
			return []deal.Candidate{
				{Name: platform + " deal 1", OriginalPrice: 1000, DealPrice: 750},
				{Name: platform + " deal 2", OriginalPrice: 2000, DealPrice: 1000},
			}, nil
		}).Times(times * len(deal.Platforms))
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_RefreshesEmptyStore() {
	s.expectAllPlatforms(1)

	deals, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(deals, 2*len(deal.Platforms))

	s.Equal("Amazon deal 1", deals[0].Name)
	s.Equal("Ajio deal 2", deals[len(deals)-1].Name)
	s.Equal(25, deals[0].DiscountPercentage)
	s.Equal(50, deals[1].DiscountPercentage)
	for _, d := range deals {
		s.Equal(start, d.ScrapedAt)
	}
	s.Equal([]int{10}, s.observer.refreshed)
	s.Equal([]lookup{{"deals", false}}, s.observer.lookups)
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_RecentDealsAreReused() {
	s.expectAllPlatforms(1)

	first, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)

	s.clock.Add(5 * time.Hour)
	second, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)

	s.Equal(dealIDs(first), dealIDs(second))

	all, err := s.store.Deals().List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, len(first))
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_RefreshesAfterRecentWindow() {
	s.expectAllPlatforms(2)

	first, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)

	s.clock.Add(7 * time.Hour)
	second, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)

	s.Len(second, len(first))
	s.NotEqual(dealIDs(first), dealIDs(second))
	for _, d := range second {
		s.Equal(start.Add(7*time.Hour), d.ScrapedAt)
	}

	all, err := s.store.Deals().List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2*len(first))
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_SourceFailure() {
	s.source.EXPECT().FetchDeals(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, platform string) ([]deal.Candidate, error) {
			if platform == "Myntra" {
				return nil, errs.New("connection reset")
			}
			return []deal.Candidate{{Name: platform + " deal", OriginalPrice: 100, DealPrice: 90}}, nil
		}).AnyTimes()

	_, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrUpstream))

	all, err := s.store.Deals().List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_SkipsInvalidCandidates() {
	s.source.EXPECT().FetchDeals(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, platform string) ([]deal.Candidate, error) {
			if platform != "Amazon" {
				return nil, nil
			}
			return []deal.Candidate{
				{Name: "", OriginalPrice: 100, DealPrice: 90},
				{Name: "Negative", OriginalPrice: -1, DealPrice: 90},
				{Name: "Markup", OriginalPrice: 100, DealPrice: 150},
			}, nil
		}).Times(len(deal.Platforms))

	deals, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(deals, 1)
	s.Equal("Markup", deals[0].Name)
	s.Zero(deals[0].DiscountPercentage)
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_ConcurrentRefreshRunsOnce() {
	var mu sync.Mutex
	calls := 0
	s.source.EXPECT().FetchDeals(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, platform string) ([]deal.Candidate, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			return []deal.Candidate{{Name: platform + " deal", OriginalPrice: 100, DealPrice: 80}}, nil
		}).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deals, err := s.uc.GetDailyDeals(s.ctx)
			s.NoError(err)
			s.Len(deals, len(deal.Platforms))
		}()
	}
	wg.Wait()

	s.Equal(len(deal.Platforms), calls)
	all, err := s.store.Deals().List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, len(deal.Platforms))
}

func (s *DailyDealsTestSuite) TestPruneDeals() {
	mk := func(name string, at time.Time) *deal.Deal {
		d, err := deal.New(deal.Candidate{Name: name, OriginalPrice: 100, DealPrice: 50}, "Amazon", at)
		s.Require().NoError(err)
		return d
	}
	s.Require().NoError(s.store.Deals().InsertMany(s.ctx, []*deal.Deal{
		mk("expired", start.Add(-25*time.Hour)),
		mk("boundary", start.Add(-24*time.Hour)),
		mk("stale", start.Add(-7*time.Hour)),
	}))

	n, err := s.uc.PruneDeals(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	left, err := s.store.Deals().List(s.ctx)
	s.Require().NoError(err)
	s.Len(left, 2)

	n, err = s.uc.PruneDeals(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *DailyDealsTestSuite) TestGetDailyDeals_OnlyStaleDealsTriggersRefresh() {
	old, err := deal.New(deal.Candidate{Name: "yesterday", OriginalPrice: 100, DealPrice: 50}, "Amazon", start.Add(-7*time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Deals().InsertMany(s.ctx, []*deal.Deal{old}))
	s.expectAllPlatforms(1)

	deals, err := s.uc.GetDailyDeals(s.ctx)
	s.Require().NoError(err)
	s.NotContains(dealIDs(deals), old.ID)
}

func dealIDs(deals []*deal.Deal) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.ID)
	}
	return out
}
