package main

import (
	"context"
	"log"

	"agilefinance/internal/config"
	"agilefinance/internal/dbsql"
	"agilefinance/internal/logger"
	"agilefinance/internal/systemconfig"

	"go.uber.org/zap"
)

// schemaVersion is recorded in system_config after a successful migration.
const schemaVersion = "1.0.0.1"

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := dbsql.NewDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}

	ctx := context.Background()
	configs := systemconfig.NewService(systemconfig.NewRepository(db), zlog)

	current := configs.DBVersion(ctx)
	zlog.Info("migrating", zap.String("current_version", current), zap.String("target_version", schemaVersion))

	if err := dbsql.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	configs.RegisterDefaults(ctx, systemconfig.Defaults)
	if current != schemaVersion {
		if err := configs.SetDBVersion(ctx, schemaVersion); err != nil {
			zlog.Fatal("failed to record schema version", zap.Error(err))
		}
	}

	zlog.Info("migration complete", zap.String("version", schemaVersion))
}
