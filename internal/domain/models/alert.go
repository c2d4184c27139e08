// internal/domain/models/alert.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response decisions.
const (
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// Response is a donor's reply to an alert, embedded in the alert document.
// There is no uniqueness constraint: a donor may respond several times and
// each reply is appended as a new entry. ETA is stored verbatim as the
// donor supplied it.
type Response struct {
	Email       string    `bson:"email" json:"email"`
	Status      string    `bson:"status" json:"status"`
	ETA         string    `bson:"eta,omitempty" json:"eta,omitempty"`
	RespondedAt time.Time `bson:"responded_at" json:"respondedAt"`
}

// Alert is a broadcast notification inviting donor responses.
//
// Group is the blood-group scope; empty means every donor sees it. It is
// set at creation and never changes. SourceRequestID links an alert back to
// the accepted request that spawned it, so accepted-but-unbroadcast
// requests can be found and retried; alerts created by hand carry none.
type Alert struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Message         string              `bson:"message" json:"message"`
	Group           string              `bson:"group,omitempty" json:"group"`
	SourceRequestID *primitive.ObjectID `bson:"source_request_id,omitempty" json:"source_request_id,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"createdAt"`
	Responses       []Response          `bson:"responses" json:"responses"`
}
