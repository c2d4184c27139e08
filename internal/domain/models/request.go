// internal/domain/models/request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request statuses. Transitions are one-shot: once a request leaves Pending
// the matching timestamp is stamped and never cleared, and there is no path
// back to Pending.
const (
	RequestPending  = "Pending"
	RequestAccepted = "Accepted"
	RequestRejected = "Rejected"
)

// Request is a hospital's formal need for blood.
//
// NeededBy is kept as a YYYY-MM-DD string rather than a time.Time: it is a
// calendar date chosen by the requester, not an instant.
type Request struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Blood    string             `bson:"blood" json:"blood"`
	Units    int                `bson:"units" json:"units"`
	NeededBy string             `bson:"needed_by" json:"neededBy"`
	Hospital string             `bson:"hospital" json:"hospital"`
	Location string             `bson:"location" json:"location"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status   string             `bson:"status" json:"status"`

	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
	AcceptedAt *time.Time `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	RejectedAt *time.Time `bson:"rejected_at,omitempty" json:"rejected_at,omitempty"`
}
