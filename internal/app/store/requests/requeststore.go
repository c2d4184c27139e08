// internal/app/store/requests/requeststore.go
package requeststore

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

// Store owns the requests collection: a hospital's blood needs and their
// Pending → Accepted/Rejected lifecycle.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("requests")}
}

// Create validates required fields, stamps Pending status and timestamps,
// and inserts the request.
func (s *Store) Create(ctx context.Context, req models.Request) (models.Request, error) {
	if req.Name == "" {
		return models.Request{}, faults.Missing("name")
	}
	if req.Email == "" {
		return models.Request{}, faults.Missing("email")
	}
	if !models.ValidBloodGroup(req.Blood) {
		return models.Request{}, faults.Invalid("blood", "must be one of the eight blood groups")
	}
	if req.Units < 1 {
		return models.Request{}, faults.Invalid("units", "must be at least 1")
	}
	if req.NeededBy == "" {
		return models.Request{}, faults.Missing("neededBy")
	}
	if req.Hospital == "" {
		return models.Request{}, faults.Missing("hospital")
	}
	if req.Location == "" {
		return models.Request{}, faults.Missing("location")
	}

	now := time.Now().UTC()
	req.ID = primitive.NewObjectID()
	req.Status = models.RequestPending
	req.AcceptedAt = nil
	req.RejectedAt = nil
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.Request{}, faults.Storage("insert request", err)
	}
	return req, nil
}

// GetByID loads a single request.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Request, error) {
	var req models.Request
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return models.Request{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Request{}, faults.Storage("get request", err)
	}
	return req, nil
}

// Accept marks a request Accepted and stamps accepted_at in the same
// update, so a failed write never applies one without the other. Accepting
// an already-decided request re-stamps accepted_at but never clears
// rejected_at.
func (s *Store) Accept(ctx context.Context, id primitive.ObjectID) (models.Request, error) {
	return s.transition(ctx, id, models.RequestAccepted, "accepted_at")
}

// Reject marks a request Rejected and stamps rejected_at. Same semantics
// as Accept with the fields swapped.
func (s *Store) Reject(ctx context.Context, id primitive.ObjectID) (models.Request, error) {
	return s.transition(ctx, id, models.RequestRejected, "rejected_at")
}

func (s *Store) transition(ctx context.Context, id primitive.ObjectID, status, stampField string) (models.Request, error) {
	now := time.Now().UTC()
	after := options.After
	var req models.Request
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			stampField:   now,
			"updated_at": now,
		}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return models.Request{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Request{}, faults.Storage("transition request", err)
	}
	return req, nil
}

// Patch holds the fields a generic update may change. Zero values are left
// untouched; Units uses a pointer so an explicit value can be told apart
// from absence.
type Patch struct {
	Name     string
	Email    string
	Phone    string
	Blood    string
	Units    *int
	NeededBy string
	Hospital string
	Location string
	Notes    string
	Status   string
}

// Update applies a generic field patch. A patch that sets status to
// Accepted or Rejected also stamps the matching timestamp, keeping this
// path consistent with Accept/Reject.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Request, error) {
	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	if p.Name != "" {
		set["name"] = p.Name
	}
	if p.Email != "" {
		set["email"] = p.Email
	}
	if p.Phone != "" {
		set["phone"] = p.Phone
	}
	if p.Blood != "" {
		if !models.ValidBloodGroup(p.Blood) {
			return models.Request{}, faults.Invalid("blood", "must be one of the eight blood groups")
		}
		set["blood"] = p.Blood
	}
	if p.Units != nil {
		if *p.Units < 1 {
			return models.Request{}, faults.Invalid("units", "must be at least 1")
		}
		set["units"] = *p.Units
	}
	if p.NeededBy != "" {
		set["needed_by"] = p.NeededBy
	}
	if p.Hospital != "" {
		set["hospital"] = p.Hospital
	}
	if p.Location != "" {
		set["location"] = p.Location
	}
	if p.Notes != "" {
		set["notes"] = p.Notes
	}
	if p.Status != "" {
		switch p.Status {
		case models.RequestAccepted:
			set["status"] = p.Status
			set["accepted_at"] = now
		case models.RequestRejected:
			set["status"] = p.Status
			set["rejected_at"] = now
		default:
			return models.Request{}, faults.Invalid("status", "must be Accepted or Rejected")
		}
	}

	after := options.After
	var req models.Request
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return models.Request{}, faults.ErrNotFound
	}
	if err != nil {
		return models.Request{}, faults.Storage("update request", err)
	}
	return req, nil
}

// Delete removes a request.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return faults.Storage("delete request", err)
	}
	if res.DeletedCount == 0 {
		return faults.ErrNotFound
	}
	return nil
}

// List returns requests in creation order, oldest first so long-standing
// needs surface at the top. An empty status means no filter.
func (s *Store) List(ctx context.Context, status string) ([]models.Request, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, faults.Storage("list requests", err)
	}
	defer cur.Close(ctx)

	var list []models.Request
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode requests", err)
	}
	return list, nil
}

// History returns requests newest first within the given window. Callers
// clamp skip/limit through the paging package before handing them in.
func (s *Store) History(ctx context.Context, skip, limit int64) ([]models.Request, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.Storage("request history", err)
	}
	defer cur.Close(ctx)

	var list []models.Request
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode request history", err)
	}
	return list, nil
}
