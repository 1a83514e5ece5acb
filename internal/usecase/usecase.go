package usecase

import (
	"context"
	"time"

	"orion-teams/internal/repository"
	"orion-teams/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	UserUsecaseInterface
}

var _ InterfaceUsecase = (*domain.Usecase)(nil)

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
