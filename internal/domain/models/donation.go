// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses.
const (
	DonationScheduled = "Scheduled"
	DonationCompleted = "Completed"
	DonationCancelled = "Cancelled"
)

// Donation is a scheduled, completed, or cancelled donation record. Its
// lifecycle is independent of any alert or request; the bridge that creates
// one from an accepted response copies the donor email and derives the date
// from the response's eta, it does not keep a reference back.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	BloodBank string             `bson:"blood_bank" json:"bloodBank"`
	Status    string             `bson:"status" json:"status"`
	Reference string             `bson:"reference" json:"reference"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
