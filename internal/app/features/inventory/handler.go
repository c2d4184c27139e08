// internal/app/features/inventory/handler.go
package inventory

import (
	inventorystore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/inventory"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the inventory handlers.
type Handler struct {
	Inventory *inventorystore.Store
	Log       *zap.Logger
}

// NewHandler constructs an inventory Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Inventory: inventorystore.New(db),
		Log:       logger,
	}
}
