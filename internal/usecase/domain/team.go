// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"errors"
	"time"

	"orion-teams/internal/entities"
	"orion-teams/internal/metrics"
)

// CreateTeam creates an empty team with a fresh hash.
func (u *Usecase) CreateTeam(ctx context.Context) (*entities.Team, error) {
	start := time.Now()
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.repo.CreateTeam(ctx, entities.NewTeam(u.now()))
	metrics.ObserveTeamOp(opCreate, start, err)
	if err != nil {
		u.log.Errorw("failed to create team", "error", err)
		return nil, err
	}
	return team, nil
}

// FindTeam returns the team with the given hash, or nil when there is none.
func (u *Usecase) FindTeam(ctx context.Context, hashTeam string) (*entities.Team, error) {
	start := time.Now()
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.repo.FindTeamByHash(ctx, hashTeam)
	metrics.ObserveTeamOp(opFind, start, err)
	switch {
	case errors.Is(err, entities.ErrTeamNotFound):
		return nil, nil
	case err != nil:
		u.log.Errorw("failed to find team", "team", hashTeam, "error", err)
		return nil, err
	}
	return team, nil
}

// JoinTeam adds the user to the team, creating the user on first sight.
// An unknown team yields nil and leaves storage untouched.
func (u *Usecase) JoinTeam(ctx context.Context, hashTeam, hashUser string) (*entities.Team, error) {
	start := time.Now()
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.repo.JoinTeam(ctx, hashTeam, hashUser)
	metrics.ObserveTeamOp(opJoin, start, err)
	switch {
	case errors.Is(err, entities.ErrTeamNotFound):
		return nil, nil
	case err != nil:
		u.log.Errorw("failed to join team", "team", hashTeam, "user", hashUser, "error", err)
		return nil, err
	}
	return team, nil
}
