// internal/app/features/requests/handler.go
package requests

import (
	alertstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/alerts"
	requeststore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/requests"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the request lifecycle handlers. It holds the alert store as
// well because accepting a request broadcasts an alert for it.
type Handler struct {
	DB       *mongo.Database
	Requests *requeststore.Store
	Alerts   *alertstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a requests Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Requests: requeststore.New(db),
		Alerts:   alertstore.New(db),
		Log:      logger,
	}
}
