// internal/domain/models/donor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donor is an entry in the donor directory: the mapping from a donor's
// identity to their blood group, plus the profile fields the signup form
// collects. EmailCI is the folded email used for lookups.
type Donor struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	EmailCI  string             `bson:"email_ci" json:"-"`
	Password string             `bson:"password,omitempty" json:"-"`
	Age      int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender   string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Blood    string             `bson:"blood" json:"blood"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
