package usecase

import (
	"context"

	"orion-teams/internal/entities"
)

// TeamUsecaseInterface abstracts team operations for the delivery layer.
// Absence is reported as a nil team with a nil error.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context) (*entities.Team, error)
	FindTeam(ctx context.Context, hashTeam string) (*entities.Team, error)
	JoinTeam(ctx context.Context, hashTeam, hashUser string) (*entities.Team, error)
}

// UserUsecaseInterface abstracts user-related reads.
type UserUsecaseInterface interface {
	UserTeams(ctx context.Context, hashUser string) ([]entities.Team, error)
}
