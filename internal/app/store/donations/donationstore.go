// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the donations collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

// CreateFromResponse is the fulfillment bridge: it turns an accepted
// response into a donation record. The caller supplies date and blood bank
// explicitly (typically derived from the response's eta); nothing is looked
// up from the originating alert. Status defaults to Scheduled and each
// record gets a reference code the donor can quote.
func (s *Store) CreateFromResponse(ctx context.Context, email, date, bloodBank, status string) (models.Donation, error) {
	if email == "" {
		return models.Donation{}, faults.Missing("email")
	}
	if date == "" {
		return models.Donation{}, faults.Missing("date")
	}
	if bloodBank == "" {
		return models.Donation{}, faults.Missing("bloodBank")
	}
	if status == "" {
		status = models.DonationScheduled
	}
	switch status {
	case models.DonationScheduled, models.DonationCompleted, models.DonationCancelled:
	default:
		return models.Donation{}, faults.Invalid("status", "must be Scheduled, Completed, or Cancelled")
	}

	d := models.Donation{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Date:      date,
		BloodBank: bloodBank,
		Status:    status,
		Reference: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Donation{}, faults.Storage("insert donation", err)
	}
	return d, nil
}

// List returns all donations, newest date first.
func (s *Store) List(ctx context.Context) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.Storage("list donations", err)
	}
	defer cur.Close(ctx)

	var list []models.Donation
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode donations", err)
	}
	return list, nil
}

// ListByEmail returns one donor's donation history, newest date first.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, faults.Storage("list donations by email", err)
	}
	defer cur.Close(ctx)

	var list []models.Donation
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode donations", err)
	}
	return list, nil
}

// UpdateStatus moves a donation between Scheduled, Completed, and
// Cancelled.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Donation, error) {
	switch status {
	case models.DonationScheduled, models.DonationCompleted, models.DonationCancelled:
	default:
		return models.Donation{}, faults.Invalid("status", "must be Scheduled, Completed, or Cancelled")
	}

	after := options.After
	var d models.Donation
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Donation{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Donation{}, faults.Storage("update donation", err)
	}
	return d, nil
}

// Delete removes a donation record.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return faults.Storage("delete donation", err)
	}
	if res.DeletedCount == 0 {
		return faults.ErrNotFound
	}
	return nil
}
