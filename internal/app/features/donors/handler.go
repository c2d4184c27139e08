// internal/app/features/donors/handler.go
package donors

import (
	alertstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/alerts"
	donorstore "github.com/lekithkishore/blood-bank-management-system/internal/app/store/donors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the donor directory handlers: signup, login, lookup, the
// per-donor alert feed, and the admin directory surface.
type Handler struct {
	Donors *donorstore.Store
	Alerts *alertstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a donors Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Donors: donorstore.New(db),
		Alerts: alertstore.New(db),
		Log:    logger,
	}
}
