// internal/app/features/donations/handler.go
package donations

import (
	donationstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/donations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the donation-record handlers.
type Handler struct {
	Donations *donationstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a donations Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Donations: donationstore.New(db),
		Log:       logger,
	}
}
