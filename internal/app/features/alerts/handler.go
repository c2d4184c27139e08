// internal/app/features/alerts/handler.go
package alerts

import (
	alertstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/alerts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the broadcast and response-log handlers.
type Handler struct {
	Alerts *alertstore.Store
	Log    *zap.Logger
}

// NewHandler constructs an alerts Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Alerts: alertstore.New(db),
		Log:    logger,
	}
}
