// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"orion-teams/config"
	"orion-teams/internal/repository/gormrepo"
	"orion-teams/internal/repository/postgres"

	"go.uber.org/zap"
)

// Backend names accepted by New.
const (
	BackendPostgres = "postgres"
	BackendGorm     = "gorm"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	TeamInterface
	UserInterface
	MembershipInterface
}

var (
	_ Repository = (*postgres.Postgres)(nil)
	_ Repository = (*gormrepo.Gorm)(nil)
)

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case BackendGorm:
		return gormrepo.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
