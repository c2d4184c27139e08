// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	requestsfeature "github.com/lekithkishore/blood-bank-management-system/internal/app/features/requests"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after DB connections and schema
// setup are complete, but before the HTTP handler is built. When
// configured, it broadcasts alerts for any accepted request whose alert
// never made it out, so the gap closes before the first request is
// served.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if !appCfg.ReconcileOnStartup {
		return nil
	}

	h := requestsfeature.NewHandler(deps.MongoDatabase, logger)
	n, err := requestsfeature.Sweep(ctx, h)
	if err != nil {
		logger.Error("startup reconcile failed", zap.Error(err), zap.Int("broadcast", n))
		return err
	}
	if n > 0 {
		logger.Info("startup reconcile broadcast missing alerts", zap.Int("count", n))
	}
	return nil
}
