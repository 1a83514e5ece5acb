// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"orion-teams/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	// CreateTeam inserts the team and returns it with the store-assigned ID.
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	// FindTeamByHash returns the lowest-id team with that hash, members loaded,
	// or entities.ErrTeamNotFound.
	FindTeamByHash(ctx context.Context, hash string) (*entities.Team, error)
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	FindUserByHash(ctx context.Context, hash string) (*entities.User, error)
	UserTeams(ctx context.Context, userHash string) ([]entities.Team, error)
}

// MembershipInterface exposes the join workflow.
type MembershipInterface interface {
	// JoinTeam resolves or creates the user and appends one membership row in a
	// single transaction. Returns entities.ErrTeamNotFound without writing
	// anything when the team does not exist.
	JoinTeam(ctx context.Context, teamHash, userHash string) (*entities.Team, error)
}
