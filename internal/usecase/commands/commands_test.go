//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/infra/memstore"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/commands"
	"shopcompare/tests/common/builder"
	"shopcompare/tests/common/testutil"
	sharedmock "shopcompare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type CommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	scraper  *sharedmock.MockOrderStatusScraper
	store    *memstore.Store
	clock    *clock.MockClock

	wishlist commands.WishlistCommands
	orders   commands.OrderCommands
	history  commands.SearchHistoryCommands
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.scraper = sharedmock.NewMockOrderStatusScraper(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(now)

	s.wishlist = commands.NewWishlistCommands(s.store, s.clock)
	s.orders = commands.NewOrderCommands(s.store, s.scraper, s.clock)
	s.history = commands.NewSearchHistoryCommands(s.store, s.clock)
}

func (s *CommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

// ================================================================================
// Wishlist
// ================================================================================

func (s *CommandsTestSuite) TestWishlistAdd() {
	p := builder.NewProductBuilder().WithPlatform("Amazon", 79900).Build()
	s.Require().NoError(s.store.Products().Insert(s.ctx, p))
	userID := uuid.New()

	s.Run("adds a cached product", func() {
		item, err := s.wishlist.Add(s.ctx, userID, p.ID, testutil.Ptr(75000.0))
		s.Require().NoError(err)
		s.Equal(p.ID, item.ProductID)
		s.Equal(now, item.AddedAt)

		stored, err := s.store.Wishlist().FindByUserAndProduct(s.ctx, userID, p.ID)
		s.Require().NoError(err)
		s.Equal(item.ID, stored.ID)
	})

	s.Run("same product twice is a conflict", func() {
		_, err := s.wishlist.Add(s.ctx, userID, p.ID, nil)
		s.ErrorIs(err, commands.ErrAlreadyInWishlist)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("another user may add the same product", func() {
		_, err := s.wishlist.Add(s.ctx, uuid.New(), p.ID, nil)
		s.NoError(err)
	})

	s.Run("unknown product", func() {
		_, err := s.wishlist.Add(s.ctx, userID, uuid.New(), nil)
		s.ErrorIs(err, commands.ErrProductNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("non positive target price", func() {
		_, err := s.wishlist.Add(s.ctx, uuid.New(), p.ID, testutil.Ptr(0.0))
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *CommandsTestSuite) TestWishlistRemove() {
	p := builder.NewProductBuilder().WithPlatform("Amazon", 79900).Build()
	s.Require().NoError(s.store.Products().Insert(s.ctx, p))
	userID := uuid.New()
	_, err := s.wishlist.Add(s.ctx, userID, p.ID, nil)
	s.Require().NoError(err)

	s.Require().NoError(s.wishlist.Remove(s.ctx, userID, p.ID))

	err = s.wishlist.Remove(s.ctx, userID, p.ID)
	s.ErrorIs(err, commands.ErrNotInWishlist)
	s.True(errs.Is(err, errs.ErrNotFound))
}

// ================================================================================
// Orders
// ================================================================================

func (s *CommandsTestSuite) createInput(userID uuid.UUID) commands.CreateOrderInput {
	return commands.CreateOrderInput{
		UserID:       userID,
		OrderID:      "OD-1001",
		ProductName:  "Sony WH-1000XM4",
		Platform:     "Amazon",
		PurchaseDate: now.Add(-72 * time.Hour),
		OrderURL:     "https://www.amazon.in/orders/OD-1001",
	}
}

func (s *CommandsTestSuite) TestOrderCreate() {
	userID := uuid.New()

	s.Run("first scrape sets the status", func() {
		s.scraper.EXPECT().Scrape(gomock.Any(), "https://www.amazon.in/orders/OD-1001").
			Return(order.StatusShipped, nil).Times(1)

		o, err := s.orders.Create(s.ctx, s.createInput(userID))
		s.Require().NoError(err)
		s.Equal(order.StatusShipped, o.Status)
		s.Require().NotNil(o.LastStatusCheckAt)

		stored, err := s.store.Orders().FindByID(s.ctx, o.ID)
		s.Require().NoError(err)
		s.Equal(order.StatusShipped, stored.Status)
	})

	s.Run("unreadable page keeps pending", func() {
		s.scraper.EXPECT().Scrape(gomock.Any(), gomock.Any()).Return(order.StatusUnavailable, nil).Times(1)

		o, err := s.orders.Create(s.ctx, s.createInput(userID))
		s.Require().NoError(err)
		s.Equal(order.StatusPending, o.Status)
		s.Nil(o.LastStatusCheckAt)
	})

	s.Run("scrape error keeps pending", func() {
		s.scraper.EXPECT().Scrape(gomock.Any(), gomock.Any()).
			Return("", errs.Upstream(errs.New("timeout"))).Times(1)

		o, err := s.orders.Create(s.ctx, s.createInput(userID))
		s.Require().NoError(err)
		s.Equal(order.StatusPending, o.Status)
	})

	s.Run("invalid url never reaches the scraper", func() {
		in := s.createInput(userID)
		in.OrderURL = "javascript:alert(1)"
		_, err := s.orders.Create(s.ctx, in)
		s.ErrorIs(err, order.ErrInvalidOrderURL)
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *CommandsTestSuite) TestOrderRefreshStatus() {
	owner := uuid.New()
	o := builder.NewOrderBuilder().ForUser(owner).Build(now)
	s.Require().NoError(s.store.Orders().Insert(s.ctx, o))
	s.clock.Add(time.Hour)

	s.Run("records the scraped status", func() {
		s.scraper.EXPECT().Scrape(gomock.Any(), o.OrderURL).Return(order.StatusDelivered, nil).Times(1)

		got, err := s.orders.RefreshStatus(s.ctx, owner, o.ID)
		s.Require().NoError(err)
		s.Equal(order.StatusDelivered, got.Status)
		s.Equal(now.Add(time.Hour), *got.LastStatusCheckAt)
	})

	s.Run("scrape failure is recorded as unavailable", func() {
		s.scraper.EXPECT().Scrape(gomock.Any(), o.OrderURL).Return("", errs.New("boom")).Times(1)

		got, err := s.orders.RefreshStatus(s.ctx, owner, o.ID)
		s.Require().NoError(err)
		s.Equal(order.StatusUnavailable, got.Status)

		stored, err := s.store.Orders().FindByID(s.ctx, o.ID)
		s.Require().NoError(err)
		s.Equal(order.StatusUnavailable, stored.Status)
	})

	s.Run("someone else's order is not found", func() {
		_, err := s.orders.RefreshStatus(s.ctx, uuid.New(), o.ID)
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("unknown order", func() {
		_, err := s.orders.RefreshStatus(s.ctx, owner, uuid.New())
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}

func (s *CommandsTestSuite) TestOrderDelete() {
	owner := uuid.New()
	o := builder.NewOrderBuilder().ForUser(owner).Build(now)
	s.Require().NoError(s.store.Orders().Insert(s.ctx, o))

	err := s.orders.Delete(s.ctx, uuid.New(), o.ID)
	s.ErrorIs(err, commands.ErrOrderNotFound)

	s.Require().NoError(s.orders.Delete(s.ctx, owner, o.ID))
	s.ErrorIs(s.orders.Delete(s.ctx, owner, o.ID), commands.ErrOrderNotFound)
}

// ================================================================================
// Search history
// ================================================================================

func (s *CommandsTestSuite) TestRecordSearch() {
	userID := uuid.New()

	s.Run("user search is stored without a session", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{
			Query: "iphone 15", UserID: &userID, SessionID: "sess-ignored",
		})
		s.Require().NoError(err)
		s.True(res.Recorded)
		s.Empty(res.SessionID)

		entries, err := s.store.SearchHistory().ListByUser(s.ctx, userID, 50)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.Equal("iphone 15", entries[0].Query)
		s.Equal(now, entries[0].Timestamp)
	})

	s.Run("anonymous search without a session gets one", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: "pixel 8"})
		s.Require().NoError(err)
		s.True(res.Recorded)
		s.Require().NotEmpty(res.SessionID)

		entries, err := s.store.SearchHistory().ListBySession(s.ctx, res.SessionID, 50)
		s.Require().NoError(err)
		s.Len(entries, 1)
	})

	s.Run("anonymous search keeps its session", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: "boat earbuds", SessionID: "sess-1"})
		s.Require().NoError(err)
		s.Equal("sess-1", res.SessionID)
	})

	s.Run("common category queries are not stored", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: " Laptops ", UserID: &userID})
		s.Require().NoError(err)
		s.False(res.Recorded)

		entries, err := s.store.SearchHistory().ListByUser(s.ctx, userID, 50)
		s.Require().NoError(err)
		s.Len(entries, 1)
	})

	s.Run("common query from an anonymous caller starts no session", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: "smartphones"})
		s.Require().NoError(err)
		s.False(res.Recorded)
		s.Empty(res.SessionID)
	})

	s.Run("common query keeps the caller's session untouched", func() {
		res, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: "Shoes", SessionID: "sess-1"})
		s.Require().NoError(err)
		s.False(res.Recorded)
		s.Empty(res.SessionID)

		entries, err := s.store.SearchHistory().ListBySession(s.ctx, "sess-1", 50)
		s.Require().NoError(err)
		s.Len(entries, 1)
	})

	s.Run("blank query", func() {
		_, err := s.history.Record(s.ctx, commands.RecordSearchInput{Query: " ", UserID: &userID})
		s.True(errs.Is(err, errs.ErrValidation))
	})
}
