// internal/app/store/queries/unbroadcast/unbroadcast.go

// Package unbroadcast finds accepted requests that never got their alert.
// Accepting a request and broadcasting its alert are two storage writes
// with nothing atomic between them; a crash in the gap leaves an Accepted
// request no donor will ever see. The reconcile sweep uses this query to
// find and retry those.
package unbroadcast

import (
	"context"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Find returns the Accepted requests for which no alert carries their id
// as source_request_id, oldest first.
func Find(ctx context.Context, db *mongo.Database) ([]models.Request, error) {
	ids, err := db.Collection("alerts").Distinct(ctx, "source_request_id", bson.M{
		"source_request_id": bson.M{"$ne": nil},
	})
	if err != nil {
		return nil, faults.Storage("distinct broadcast request ids", err)
	}

	broadcast := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := id.(primitive.ObjectID); ok {
			broadcast = append(broadcast, oid)
		}
	}

	filter := bson.M{"status": models.RequestAccepted}
	if len(broadcast) > 0 {
		filter["_id"] = bson.M{"$nin": broadcast}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := db.Collection("requests").Find(ctx, filter, opts)
	if err != nil {
		return nil, faults.Storage("find unbroadcast requests", err)
	}
	defer cur.Close(ctx)

	var list []models.Request
	if err := cur.All(ctx, &list); err != nil {
		return nil, faults.Storage("decode unbroadcast requests", err)
	}
	return list, nil
}
