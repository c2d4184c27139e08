// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Index creation is idempotent; we aggregate
errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureRequests(ctx, db); err != nil {
		problems = append(problems, "requests: "+err.Error())
	}
	if err := ensureAlerts(ctx, db); err != nil {
		problems = append(problems, "alerts: "+err.Error())
	}
	if err := ensureDonations(ctx, db); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureDonors(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureAdmins(ctx, db); err != nil {
		problems = append(problems, "admins: "+err.Error())
	}
	if err := ensureInventory(ctx, db); err != nil {
		problems = append(problems, "inventory: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func create(ctx context.Context, db *mongo.Database, coll string, idx ...mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, idx)
	return err
}

func ensureRequests(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "requests",
		// active list filters on status; history sorts newest-first
		mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}},
	)
}

func ensureAlerts(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "alerts",
		mongo.IndexModel{Keys: bson.D{{Key: "group", Value: 1}, {Key: "created_at", Value: 1}}},
		// the reconcile sweep diffs accepted requests against this
		mongo.IndexModel{Keys: bson.D{{Key: "source_request_id", Value: 1}}},
	)
}

func ensureDonations(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "donations",
		mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}}},
	)
}

func ensureDonors(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "users",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
}

func ensureAdmins(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "admins",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
}

func ensureInventory(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "inventory",
		mongo.IndexModel{Keys: bson.D{{Key: "hospital", Value: 1}, {Key: "blood_group", Value: 1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "added_at", Value: -1}}},
	)
}
