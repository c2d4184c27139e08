// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminloginfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/adminlogin"
	alertsfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/alerts"
	donationsfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/donations"
	donorsfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/donors"
	healthfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/health"
	inventoryfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/inventory"
	requestsfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/requests"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/policy"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup, and
// the Startup hook have completed. Each feature mounts its own subrouter;
// admin surfaces receive the shared Authorizer for their route gates. The
// shipped Authorizer allows everything; swap it here when a real policy
// arrives.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	auth := policy.AllowAll{}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	healthfeature.NewHandler(deps.MongoClient, logger).MountRoutes(r)

	r.Route("/requests", func(r chi.Router) {
		requestsfeature.NewHandler(db, logger).MountRoutes(r, auth)
	})
	r.Route("/alerts", func(r chi.Router) {
		alertsfeature.NewHandler(db, logger).MountRoutes(r, auth)
	})
	r.Route("/donations", func(r chi.Router) {
		donationsfeature.NewHandler(db, logger).MountRoutes(r, auth)
	})
	r.Route("/donors", func(r chi.Router) {
		donorsfeature.NewHandler(db, logger).MountRoutes(r, auth)
	})
	r.Route("/inventory", func(r chi.Router) {
		inventoryfeature.NewHandler(db, logger).MountRoutes(r, auth)
	})
	r.Route("/admin", func(r chi.Router) {
		adminloginfeature.NewHandler(db, logger).MountRoutes(r)
	})

	return r, nil
}
