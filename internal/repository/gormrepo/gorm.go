// Package gormrepo implements the repository on top of gorm with the postgres driver.
package gormrepo

import (
	"context"
	"fmt"

	"orion-teams/config"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Gorm keeps a gorm handle over the shared schema.
type Gorm struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *gorm.DB
	cfg     config.PostgresConfig
}

// New creates a gorm-backed repository; the connection is opened in OnStart.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Gorm {
	return &Gorm{
		baseCtx: ctx,
		log:     log.Named("repo.gorm"),
		cfg:     cfg.Postgres,
	}
}

func openDB(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// OnStart opens the connection, sizes the pool and applies migrations.
func (g *Gorm) OnStart(_ context.Context) error {
	db, err := openDB(postgres.Open(g.cfg.DSN()))
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("gorm sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(int(g.cfg.MaxConns))
	sqlDB.SetMaxIdleConns(int(g.cfg.MinConns))

	pingCtx, cancelPing := context.WithTimeout(g.baseCtx, g.cfg.QueryTimeout)
	defer cancelPing()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping: %w", err)
	}

	migrateCtx, cancelMigrate := context.WithTimeout(g.baseCtx, g.cfg.MigrateTimeout)
	defer cancelMigrate()
	if err := goose.UpContext(migrateCtx, sqlDB, g.cfg.MigrationsDir); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	g.db = db
	g.log.Infow("gorm ready", "host", g.cfg.Host, "port", g.cfg.Port, "db", g.cfg.DBName)
	return nil
}

// OnStop closes the underlying connection pool.
func (g *Gorm) OnStop(_ context.Context) error {
	if g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
