// internal/app/store/alerts/alertstore.go
package alertstore

import (
	"context"
	"strings"
	"time"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the alerts collection: broadcasts with their embedded,
// append-only response logs. All response mutations go through array
// update operators so concurrent appends against the same alert cannot
// lose entries.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("alerts")}
}

// Create persists a broadcast. The message must be non-empty after
// trimming; the group scope must be empty (all donors) or a blood group
// and is immutable once set. sourceRequestID may be nil for alerts created
// by hand.
func (s *Store) Create(ctx context.Context, message, group string, sourceRequestID *primitive.ObjectID) (models.Alert, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Alert{}, faults.Missing("message")
	}
	if !models.ValidAlertScope(group) {
		return models.Alert{}, faults.Invalid("group", "must be empty or one of the eight blood groups")
	}

	alert := models.Alert{
		ID:              primitive.NewObjectID(),
		Message:         message,
		Group:           group,
		SourceRequestID: sourceRequestID,
		CreatedAt:       time.Now().UTC(),
		Responses:       []models.Response{},
	}
	if _, err := s.c.InsertOne(ctx, alert); err != nil {
		return models.Alert{}, faults.Storage("insert alert", err)
	}
	return alert, nil
}

// GetByID loads a single alert.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Alert, error) {
	var alert models.Alert
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&alert)
	if err == mongo.ErrNoDocuments {
		return models.Alert{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Alert{}, faults.Storage("get alert", err)
	}
	return alert, nil
}

// ListFor returns the alerts visible to a donor of the given blood group,
// oldest first so long-standing requests surface before fresh ones. An
// empty donorGroup returns every alert.
func (s *Store) ListFor(ctx context.Context, donorGroup string) ([]models.Alert, error) {
	filter := bson.M{}
	if donorGroup != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"group": ""},
			bson.M{"group": bson.M{"$exists": false}},
			bson.M{"group": donorGroup},
		}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, faults.Storage("list alerts", err)
	}
	defer cur.Close(ctx)

	var alerts []models.Alert
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, faults.Storage("decode alerts", err)
	}
	return alerts, nil
}

// FindBySourceRequest returns the alerts broadcast for a given request id.
func (s *Store) FindBySourceRequest(ctx context.Context, requestID primitive.ObjectID) ([]models.Alert, error) {
	cur, err := s.c.Find(ctx, bson.M{"source_request_id": requestID})
	if err != nil {
		return nil, faults.Storage("find alerts by source request", err)
	}
	defer cur.Close(ctx)

	var alerts []models.Alert
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, faults.Storage("decode alerts", err)
	}
	return alerts, nil
}

// Respond appends a donor's reply to the alert's response log via $push and
// returns the updated alert. Every call appends a fresh entry; the log
// keeps duplicates and readers dedupe when they need to.
func (s *Store) Respond(ctx context.Context, alertID primitive.ObjectID, email, status, eta string) (models.Alert, error) {
	if email == "" {
		return models.Alert{}, faults.Missing("email")
	}
	if status != models.ResponseAccepted && status != models.ResponseDeclined {
		return models.Alert{}, faults.Invalid("status", "must be accepted or declined")
	}

	resp := models.Response{
		Email:       email,
		Status:      status,
		ETA:         eta,
		RespondedAt: time.Now().UTC(),
	}

	after := options.After
	var alert models.Alert
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": alertID},
		bson.M{"$push": bson.M{"responses": resp}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&alert)
	if err == mongo.ErrNoDocuments {
		return models.Alert{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Alert{}, faults.Storage("append response", err)
	}
	return alert, nil
}

// DeleteResponse pulls a donor's response(s) from the alert. With a zero
// respondedAt it removes every entry from that donor; with a timestamp it
// removes only the exact match. Fails only when the alert itself is
// missing; pulling nothing is a successful no-op.
func (s *Store) DeleteResponse(ctx context.Context, alertID primitive.ObjectID, email string, respondedAt time.Time) (models.Alert, error) {
	if email == "" {
		return models.Alert{}, faults.Missing("email")
	}

	cond := bson.M{"email": email}
	if !respondedAt.IsZero() {
		cond["responded_at"] = respondedAt
	}

	after := options.After
	var alert models.Alert
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": alertID},
		bson.M{"$pull": bson.M{"responses": cond}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&alert)
	if err == mongo.ErrNoDocuments {
		return models.Alert{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Alert{}, faults.Storage("delete response", err)
	}
	return alert, nil
}

// Delete removes an alert and its embedded log.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return faults.Storage("delete alert", err)
	}
	if res.DeletedCount == 0 {
		return faults.ErrNotFound
	}
	return nil
}
