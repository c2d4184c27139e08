// internal/app/store/donors/donorstore.go
package donorstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/donorcache"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateEmail = errors.New("a donor with this email already exists")

// Store owns the donor directory (the users collection): the mapping from
// donor identity to blood group plus the signup profile. Reads by email go
// through a read-through cache invalidated on every write.
type Store struct {
	c     *mongo.Collection
	cache *donorcache.Cache
}

func New(db *mongo.Database) *Store {
	s := &Store{c: db.Collection("users")}
	s.cache = donorcache.New(s.fetchByEmailCI)
	return s
}

// Create registers a donor. The email is folded for the case-insensitive
// lookup key and must be unique.
func (s *Store) Create(ctx context.Context, d models.Donor) (models.Donor, error) {
	if d.Name == "" {
		return models.Donor{}, faults.Missing("name")
	}
	if d.Email == "" {
		return models.Donor{}, faults.Missing("email")
	}
	if !models.ValidBloodGroup(d.Blood) {
		return models.Donor{}, faults.Invalid("blood", "must be one of the eight blood groups")
	}

	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.EmailCI = text.Fold(d.Email)
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Donor{}, ErrDuplicateEmail
		}
		return models.Donor{}, faults.Storage("insert donor", err)
	}
	s.cache.Invalidate(d.EmailCI)
	return d, nil
}

// GetByEmail resolves a donor by email through the cache. This is the
// directory lookup the matcher's callers use to pick a donor's group.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Donor, error) {
	return s.cache.Get(ctx, text.Fold(email))
}

func (s *Store) fetchByEmailCI(ctx context.Context, emailCI string) (models.Donor, error) {
	var d models.Donor
	err := s.c.FindOne(ctx, bson.M{"email_ci": emailCI}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Donor{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Donor{}, faults.Storage("get donor", err)
	}
	return d, nil
}

// GetByID loads a donor by id, bypassing the cache.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Donor, error) {
	var d models.Donor
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Donor{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Donor{}, faults.Storage("get donor", err)
	}
	return d, nil
}

// List returns every donor, newest first.
func (s *Store) List(ctx context.Context) ([]models.Donor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.Storage("list donors", err)
	}
	defer cur.Close(ctx)

	var list []models.Donor
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode donors", err)
	}
	return list, nil
}

// Patch holds the profile fields an admin may change.
type Patch struct {
	Name   string
	Blood  string
	Gender string
	Age    *int
}

// Update patches a donor's profile and invalidates the cached entry.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Donor, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Name != "" {
		set["name"] = p.Name
	}
	if p.Blood != "" {
		if !models.ValidBloodGroup(p.Blood) {
			return models.Donor{}, faults.Invalid("blood", "must be one of the eight blood groups")
		}
		set["blood"] = p.Blood
	}
	if p.Gender != "" {
		set["gender"] = p.Gender
	}
	if p.Age != nil {
		set["age"] = *p.Age
	}

	after := options.After
	var d models.Donor
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Donor{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Donor{}, faults.Storage("update donor", err)
	}
	s.cache.Invalidate(d.EmailCI)
	return d, nil
}

// Delete removes a donor from the directory.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return faults.Storage("delete donor", err)
	}
	s.cache.Invalidate(d.EmailCI)
	return nil
}
