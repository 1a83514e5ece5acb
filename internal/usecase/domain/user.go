package domain

import (
	"context"
	"errors"
	"time"

	"orion-teams/internal/entities"
	"orion-teams/internal/metrics"
)

// UserTeams lists the teams of a user. Unknown users have no teams.
func (u *Usecase) UserTeams(ctx context.Context, hashUser string) ([]entities.Team, error) {
	start := time.Now()
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.UserTeams(ctx, hashUser)
	metrics.ObserveTeamOp(opUserTeams, start, err)
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return []entities.Team{}, nil
	case err != nil:
		u.log.Errorw("failed to list user teams", "user", hashUser, "error", err)
		return nil, err
	}
	return teams, nil
}
