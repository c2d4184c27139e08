// internal/domain/models/inventory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryEntry records units of a blood group held at a hospital.
type InventoryEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Hospital   string             `bson:"hospital" json:"hospital"`
	BloodGroup string             `bson:"blood_group" json:"bloodGroup"`
	Units      int                `bson:"units" json:"units"`
	AddedAt    time.Time          `bson:"added_at" json:"addedAt"`
}
