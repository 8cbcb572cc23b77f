// Package mongostore persists survey profiles in a MongoDB collection with a
// unique index on idName.
package mongostore

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bgaze-labs/bgaze/core"
)

const profileCollection = "userprofiles"

type ProfileStore struct {
	c *mongo.Collection
}

func NewProfileStore(db *mongo.Database) *ProfileStore {
	return &ProfileStore{c: db.Collection(profileCollection)}
}

// EnsureIndexes creates the unique idName index. Call exactly once at
// startup, before serving; uniqueness is enforced here, not in application
// code, so concurrent writers cannot race past a check-then-insert.
func (s *ProfileStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "idName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *ProfileStore) Create(ctx context.Context, p core.UserProfile) error {
	_, err := s.c.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return core.ErrDuplicateKey
	}
	return err
}

func (s *ProfileStore) All(ctx context.Context) ([]core.UserProfile, error) {
	return s.find(ctx, bson.M{})
}

func (s *ProfileStore) ByIDName(ctx context.Context, idName string) (*core.UserProfile, error) {
	var p core.UserProfile
	err := s.c.FindOne(ctx, bson.M{"idName": idName}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileStore) ByEmail(ctx context.Context, email string) ([]core.UserProfile, error) {
	return s.find(ctx, bson.M{"email": email})
}

// ExistsByEmail runs a limit-1 count so presence checks never fetch document
// bodies.
func (s *ProfileStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	return n > 0, err
}

func (s *ProfileStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"email": email})
}

func (s *ProfileStore) Search(ctx context.Context, q string) ([]core.UserProfile, error) {
	return s.find(ctx, searchFilter(q))
}

// searchFilter matches idName or email by case-insensitive substring. The
// query is quoted so regex metacharacters match literally.
func searchFilter(q string) bson.M {
	re := bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"idName": re},
		bson.M{"email": re},
	}}
}

// Rename applies the idName/email change as a single conditional update. A
// concurrent claim of the target idName is rejected by the unique index and
// reported as ErrDuplicateKey; there is no check-then-write window.
func (s *ProfileStore) Rename(ctx context.Context, idName string, upd core.ProfileUpdate) error {
	set := renameSet(upd)
	if len(set) == 0 {
		return core.ErrNoChange
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"idName": idName}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return core.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func renameSet(upd core.ProfileUpdate) bson.M {
	set := bson.M{}
	if upd.IDName != nil {
		set["idName"] = *upd.IDName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	return set
}

func (s *ProfileStore) Delete(ctx context.Context, idName string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"idName": idName})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *ProfileStore) find(ctx context.Context, filter bson.M) ([]core.UserProfile, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	profiles := []core.UserProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
