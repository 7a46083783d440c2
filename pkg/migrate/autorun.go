package migrate

import (
	"context"
	"fmt"

	"github.com/marketconnect/backend/pkg/config"
	"github.com/marketconnect/backend/pkg/db"
	"github.com/marketconnect/backend/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the app is running in
// dev mode and the feature flag is enabled. There is deliberately no
// drop-and-recreate path anywhere: the only way down is an explicit goose
// down, never an automatic one.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	// SQLite setups initialize through GORM instead of goose; the SQL
	// migrations target Postgres.
	if cfg.DB.IsSQLite() {
		logg.Info(logg.WithField(ctx, "env", cfg.App.Env), "bootstrapping sqlite schema (dev auto-run)")
		return client.Bootstrap(ctx)
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
