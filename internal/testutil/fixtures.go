package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateDonor inserts a donor directory entry and returns it.
func (f *Fixtures) CreateDonor(ctx context.Context, name, email, blood string) models.Donor {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Donor{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		EmailCI:   text.Fold(email),
		Blood:     blood,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donor: %v", err)
	}
	return d
}

// CreateRequest inserts a pending blood request with sensible defaults.
func (f *Fixtures) CreateRequest(ctx context.Context, blood string, units int) models.Request {
	f.t.Helper()

	now := time.Now().UTC()
	req := models.Request{
		ID:        primitive.NewObjectID(),
		Name:      "Test Requester",
		Email:     "requester@test.com",
		Blood:     blood,
		Units:     units,
		NeededBy:  "2025-06-01",
		Hospital:  "City Hospital",
		Location:  "Midtown",
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test request: %v", err)
	}
	return req
}

// CreateAlert inserts an alert with an empty response log.
func (f *Fixtures) CreateAlert(ctx context.Context, message, group string) models.Alert {
	f.t.Helper()

	alert := models.Alert{
		ID:        primitive.NewObjectID(),
		Message:   message,
		Group:     group,
		CreatedAt: time.Now().UTC(),
		Responses: []models.Response{},
	}
	if _, err := f.db.Collection("alerts").InsertOne(ctx, alert); err != nil {
		f.t.Fatalf("failed to create test alert: %v", err)
	}
	return alert
}

// CreateDonation inserts a scheduled donation record.
func (f *Fixtures) CreateDonation(ctx context.Context, email, date, bank string) models.Donation {
	f.t.Helper()

	d := models.Donation{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Date:      date,
		BloodBank: bank,
		Status:    models.DonationScheduled,
		Reference: "test-ref",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return d
}
