//go:build unit || e2e

// Package storetest holds the behaviour every shared.Store adapter must share.
// Adapter tests embed ContractSuite and supply a fresh store per test.
package storetest

import (
	"context"
	"errors"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/domain/order"
	"shopcompare/internal/domain/product"
	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/domain/user"
	"shopcompare/internal/domain/wishlist"
	"shopcompare/internal/infra"
	"shopcompare/internal/usecase/shared"
	"shopcompare/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Mongo keeps milliseconds, Postgres microseconds.
var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.EquateApproxTime(time.Millisecond),
}

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type ContractSuite struct {
	suite.Suite
	// NewStore returns an empty store.
	NewStore func() shared.Store

	store shared.Store
	ctx   context.Context
}

func (s *ContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore()
}

func (s *ContractSuite) seedUser(email string) *user.User {
	u, err := builder.NewUserBuilder().WithEmail(email).BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Users().Insert(s.ctx, u))
	return u
}

func (s *ContractSuite) TestProducts() {
	products := s.store.Products()

	s.Run("insert then find by id returns the same document", func() {
		p := builder.NewProductBuilder().WithName("Sony WH-1000XM5").
			WithPlatform("Amazon", 29990).WithPlatform("Flipkart", 28990).Build()
		rating := 4.5
		p.Rating = &rating

		s.Require().NoError(products.Insert(s.ctx, p))

		got, err := products.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		if diff := cmp.Diff(p, got, cmpOpts...); diff != "" {
			s.T().Errorf("product mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("find by name ignores case and spacing", func() {
		p := builder.NewProductBuilder().WithName("Nike Air Max 270").WithPlatform("Myntra", 8995).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		got, err := products.FindByName(s.ctx, "  nike   AIR max 270 ")
		s.Require().NoError(err)
		s.Equal(p.ID, got.ID)
	})

	s.Run("a second product with the same name is a duplicate", func() {
		p := builder.NewProductBuilder().WithName("MacBook Air M2").WithPlatform("Amazon", 104900).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		dup := builder.NewProductBuilder().WithName("macbook air m2").WithPlatform("Croma", 99900).Build()
		err := products.Insert(s.ctx, dup)
		s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})

	s.Run("unknown ids are not found", func() {
		_, err := products.FindByID(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)

		_, err = products.FindByName(s.ctx, "no such product")
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	s.Run("text search matches name substrings and keywords", func() {
		phone := builder.NewProductBuilder().WithName("Samsung Galaxy S24 Ultra").WithPlatform("Amazon", 129999).Build()
		s.Require().NoError(products.Insert(s.ctx, phone))

		byName, err := products.SearchByText(s.ctx, "GALAXY S24")
		s.Require().NoError(err)
		s.Contains(productIDs(byName), phone.ID)

		byKeyword, err := products.SearchByText(s.ctx, "ultra")
		s.Require().NoError(err)
		s.Contains(productIDs(byKeyword), phone.ID)

		none, err := products.SearchByText(s.ctx, "refrigerator")
		s.Require().NoError(err)
		s.Empty(none)
	})

	s.Run("text search treats pattern characters literally", func() {
		p := builder.NewProductBuilder().WithName("Boat 100% Bass Earbuds").WithPlatform("Amazon", 999).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		got, err := products.SearchByText(s.ctx, "100%")
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{p.ID}, productIDs(got))

		got, err = products.SearchByText(s.ctx, "b.at")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("find by ids skips missing ids", func() {
		p := builder.NewProductBuilder().WithName("OnePlus 12").WithPlatform("Amazon", 64999).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		got, err := products.FindByIDs(s.ctx, []uuid.UUID{p.ID, uuid.New()})
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{p.ID}, productIDs(got))
	})

	s.Run("modify persists the change", func() {
		p := builder.NewProductBuilder().WithName("Google Pixel 8").WithPlatform("Flipkart", 75999).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		later := base.Add(time.Hour)
		updated, err := products.Modify(s.ctx, p.ID, func(p *product.Product) error {
			p.RecordObservation(later)
			return nil
		})
		s.Require().NoError(err)
		s.Len(updated.Platforms[0].PriceHistory, 2)

		got, err := products.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Len(got.Platforms[0].PriceHistory, 2)
		s.Require().NotNil(got.LastPriceChangeAt)
		s.WithinDuration(later, *got.LastPriceChangeAt, time.Millisecond)
	})

	s.Run("modify returns the callback error and keeps the document", func() {
		p := builder.NewProductBuilder().WithName("Redmi Note 13").WithPlatform("Amazon", 17999).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		boom := errors.New("boom")
		_, err := products.Modify(s.ctx, p.ID, func(p *product.Product) error {
			p.Platforms = nil
			return boom
		})
		s.ErrorIs(err, boom)

		got, err := products.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Len(got.Platforms, 1)
	})

	s.Run("modify of a missing product is not found", func() {
		_, err := products.Modify(s.ctx, uuid.New(), func(*product.Product) error { return nil })
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	s.Run("returned documents are copies", func() {
		p := builder.NewProductBuilder().WithName("Realme Narzo 60").WithPlatform("Amazon", 15999).Build()
		s.Require().NoError(products.Insert(s.ctx, p))

		got, err := products.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		got.Platforms[0].Price = 1

		again, err := products.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(15999.0, again.Platforms[0].Price)
	})
}

func (s *ContractSuite) TestDeals() {
	deals := s.store.Deals()

	mk := func(name string, at time.Time) *deal.Deal {
		d, err := deal.New(deal.Candidate{Name: name, OriginalPrice: 100, DealPrice: 80}, "Amazon", at)
		s.Require().NoError(err)
		return d
	}

	s.Run("list is newest first and keeps insertion order for ties", func() {
		old := mk("old", base.Add(-2*time.Hour))
		a := mk("a", base)
		b := mk("b", base)
		s.Require().NoError(deals.InsertMany(s.ctx, []*deal.Deal{old, a, b}))

		got, err := deals.List(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"a", "b", "old"}, dealNames(got))
	})

	s.Run("delete older than removes only deals strictly before the cutoff", func() {
		got, err := deals.DeleteOlderThan(s.ctx, base)
		s.Require().NoError(err)
		s.Equal(int64(1), got)

		left, err := deals.List(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"a", "b"}, dealNames(left))
	})

	s.Run("inserting nothing is a no-op", func() {
		s.NoError(deals.InsertMany(s.ctx, nil))
	})
}

func (s *ContractSuite) TestUsers() {
	users := s.store.Users()
	u := s.seedUser("asha@example.com")

	s.Run("find by email and id", func() {
		byEmail, err := users.FindByEmail(s.ctx, "asha@example.com")
		s.Require().NoError(err)
		s.Equal(u.ID(), byEmail.ID())
		s.Equal(u.Name().Value(), byEmail.Name().Value())
		s.Equal(u.PasswordHash(), byEmail.PasswordHash())

		byID, err := users.FindByID(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Equal("asha@example.com", byID.Email().Value())
	})

	s.Run("email is unique", func() {
		dup, err := builder.NewUserBuilder().WithEmail("asha@example.com").BuildDomain()
		s.Require().NoError(err)
		err = users.Insert(s.ctx, dup)
		s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})

	s.Run("update replaces preferences", func() {
		u.UpdatePreferences(user.Preferences{Theme: user.ThemeDark}, base.Add(time.Hour))
		s.Require().NoError(users.Update(s.ctx, u))

		got, err := users.FindByID(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Equal(user.ThemeDark, got.Preferences().Theme)
	})

	s.Run("update of a missing user is not found", func() {
		ghost, err := builder.NewUserBuilder().WithEmail("ghost@example.com").BuildDomain()
		s.Require().NoError(err)
		err = users.Update(s.ctx, ghost)
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func (s *ContractSuite) TestWishlist() {
	items := s.store.Wishlist()
	u := s.seedUser("wish@example.com")
	productID := uuid.New()
	target := 25000.0

	item, err := wishlist.NewItem(u.ID(), productID, &target, base)
	s.Require().NoError(err)
	s.Require().NoError(items.Insert(s.ctx, item))

	s.Run("find by user and product", func() {
		got, err := items.FindByUserAndProduct(s.ctx, u.ID(), productID)
		s.Require().NoError(err)
		if diff := cmp.Diff(item, got, cmpOpts...); diff != "" {
			s.T().Errorf("item mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("pair is unique", func() {
		dup, err := wishlist.NewItem(u.ID(), productID, nil, base)
		s.Require().NoError(err)
		err = items.Insert(s.ctx, dup)
		s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)

		list, err := items.ListByUser(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Len(list, 1)
	})

	s.Run("delete then delete again", func() {
		s.Require().NoError(items.Delete(s.ctx, u.ID(), productID))

		err := items.Delete(s.ctx, u.ID(), productID)
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)

		list, err := items.ListByUser(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Empty(list)
	})
}

func (s *ContractSuite) TestOrders() {
	orders := s.store.Orders()
	owner := s.seedUser("owner@example.com")
	other := s.seedUser("other@example.com")

	o := builder.NewOrderBuilder().ForUser(owner.ID()).Build(base)
	s.Require().NoError(orders.Insert(s.ctx, o))

	s.Run("update stores the status check", func() {
		o.ApplyStatus(order.StatusShipped, base.Add(time.Hour))
		s.Require().NoError(orders.Update(s.ctx, o))

		got, err := orders.FindByID(s.ctx, o.ID)
		s.Require().NoError(err)
		if diff := cmp.Diff(o, got, cmpOpts...); diff != "" {
			s.T().Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("list is scoped to the owner", func() {
		mine, err := orders.ListByUser(s.ctx, owner.ID())
		s.Require().NoError(err)
		s.Len(mine, 1)

		theirs, err := orders.ListByUser(s.ctx, other.ID())
		s.Require().NoError(err)
		s.Empty(theirs)
	})

	s.Run("delete enforces ownership", func() {
		err := orders.Delete(s.ctx, other.ID(), o.ID)
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)

		s.Require().NoError(orders.Delete(s.ctx, owner.ID(), o.ID))

		_, err = orders.FindByID(s.ctx, o.ID)
		s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func (s *ContractSuite) TestSearchHistory() {
	history := s.store.SearchHistory()
	u := s.seedUser("history@example.com")
	uid := u.ID()

	for i, q := range []string{"pixel 8", "iphone 15", "galaxy s24"} {
		e, err := searchhistory.NewEntry(q, &uid, "", nil, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		s.Require().NoError(history.Insert(s.ctx, e))
	}
	anon, err := searchhistory.NewEntry("boat earbuds", nil, "sess-1", nil, base)
	s.Require().NoError(err)
	s.Require().NoError(history.Insert(s.ctx, anon))

	s.Run("user history is newest first and limited", func() {
		got, err := history.ListByUser(s.ctx, uid, 2)
		s.Require().NoError(err)
		s.Equal([]string{"galaxy s24", "iphone 15"}, queriesOf(got))
	})

	s.Run("session history only holds anonymous entries", func() {
		got, err := history.ListBySession(s.ctx, "sess-1", 50)
		s.Require().NoError(err)
		s.Equal([]string{"boat earbuds"}, queriesOf(got))
		s.Nil(got[0].UserID)

		none, err := history.ListBySession(s.ctx, "sess-2", 50)
		s.Require().NoError(err)
		s.Empty(none)
	})
}

func productIDs(ps []*product.Product) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func dealNames(ds []*deal.Deal) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}

func queriesOf(es []*searchhistory.Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Query)
	}
	return out
}
