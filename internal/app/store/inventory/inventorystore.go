// internal/app/store/inventory/inventorystore.go
package inventorystore

import (
	"context"
	"time"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the inventory collection: units of blood held per hospital.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("inventory")}
}

// Create validates and inserts an inventory entry. A zero AddedAt is
// stamped with the current time.
func (s *Store) Create(ctx context.Context, e models.InventoryEntry) (models.InventoryEntry, error) {
	if e.Hospital == "" {
		return models.InventoryEntry{}, faults.Missing("hospital")
	}
	if !models.ValidBloodGroup(e.BloodGroup) {
		return models.InventoryEntry{}, faults.Invalid("bloodGroup", "must be one of the eight blood groups")
	}
	if e.Units < 1 {
		return models.InventoryEntry{}, faults.Invalid("units", "must be at least 1")
	}

	e.ID = primitive.NewObjectID()
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.InventoryEntry{}, faults.Storage("insert inventory entry", err)
	}
	return e, nil
}

// List returns inventory entries, newest first.
func (s *Store) List(ctx context.Context) ([]models.InventoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.Storage("list inventory", err)
	}
	defer cur.Close(ctx)

	var list []models.InventoryEntry
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode inventory", err)
	}
	return list, nil
}

// Update replaces an entry's mutable fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, e models.InventoryEntry) (models.InventoryEntry, error) {
	set := bson.M{}
	if e.Hospital != "" {
		set["hospital"] = e.Hospital
	}
	if e.BloodGroup != "" {
		if !models.ValidBloodGroup(e.BloodGroup) {
			return models.InventoryEntry{}, faults.Invalid("bloodGroup", "must be one of the eight blood groups")
		}
		set["blood_group"] = e.BloodGroup
	}
	if e.Units > 0 {
		set["units"] = e.Units
	}
	if !e.AddedAt.IsZero() {
		set["added_at"] = e.AddedAt
	}
	if len(set) == 0 {
		return models.InventoryEntry{}, faults.Invalid("body", "no fields to update")
	}

	after := options.After
	var out models.InventoryEntry
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return models.InventoryEntry{}, faults.ErrNotFound
	}
	if err != nil {
		return models.InventoryEntry{}, faults.Storage("update inventory entry", err)
	}
	return out, nil
}

// Delete removes an inventory entry.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return faults.Storage("delete inventory entry", err)
	}
	if res.DeletedCount == 0 {
		return faults.ErrNotFound
	}
	return nil
}
