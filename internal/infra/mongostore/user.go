package mongostore

import (
	"context"
	"errors"
	"time"

	"shopcompare/internal/domain/user"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Theme        string    `bson:"theme"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toUserDoc(u *user.User) userDoc {
	return userDoc{
		ID:           u.ID().String(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Theme:        u.Preferences().Theme.String(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

type UserStore struct {
	coll *mongo.Collection
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) Insert(ctx context.Context, u *user.User) error {
	if _, err := s.coll.InsertOne(ctx, toUserDoc(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (s *UserStore) Update(ctx context.Context, u *user.User) error {
	doc := toUserDoc(u)
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{
		"name":          doc.Name,
		"password_hash": doc.PasswordHash,
		"theme":         doc.Theme,
		"updated_at":    doc.UpdatedAt,
	}})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*user.User, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.NotFound("user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user document", err)
	}
	return user.Reconstruct(id, doc.Name, doc.Email, doc.PasswordHash,
		user.Preferences{Theme: user.Theme(doc.Theme)}, doc.CreatedAt.UTC(), doc.UpdatedAt.UTC()), nil
}
