package memstore

import (
	"context"
	"time"

	"shopcompare/internal/domain/user"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

// userRecord holds the exported shape of user.User, whose fields are private.
type userRecord struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Theme        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toUserRecord(u *user.User) *userRecord {
	return &userRecord{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Theme:        u.Preferences().Theme.String(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (r *userRecord) toDomain() *user.User {
	return user.Reconstruct(r.ID, r.Name, r.Email, r.PasswordHash,
		user.Preferences{Theme: user.Theme(r.Theme)}, r.CreatedAt, r.UpdatedAt)
}

type UserStore struct {
	t table[uuid.UUID, userRecord]
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	r, ok := s.t.get(id)
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return r.toDomain(), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var found *userRecord
	s.t.each(func(r *userRecord) bool {
		if r.Email == email {
			found = r
			return false
		}
		return true
	})
	if found == nil {
		return nil, infra.NotFound("user not found")
	}
	return found.toDomain(), nil
}

func (s *UserStore) Insert(_ context.Context, u *user.User) error {
	rec := toUserRecord(u)

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	duplicate := false
	s.t.each(func(r *userRecord) bool {
		duplicate = r.Email == rec.Email || r.ID == rec.ID
		return !duplicate
	})
	if duplicate {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	s.t.put(rec.ID, rec)
	return nil
}

func (s *UserStore) Update(_ context.Context, u *user.User) error {
	rec := toUserRecord(u)

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	if _, ok := s.t.get(rec.ID); !ok {
		return infra.NotFound("user not found")
	}
	s.t.put(rec.ID, rec)
	return nil
}
