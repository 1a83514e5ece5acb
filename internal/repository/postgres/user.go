package postgres

import (
	"context"
	"errors"
	"fmt"

	"orion-teams/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectUserByHashQuery = `SELECT id, hash FROM users WHERE hash=$1 ORDER BY id LIMIT 1`
	selectUserTeamRefs    = `
SELECT t.id, t.hash
FROM team_users tu
JOIN teams t ON t.id = tu.team_id
WHERE tu.user_id=$1
ORDER BY tu.id`
	selectUserTeamsQuery = `
SELECT t.id, t.hash, t.creation_date
FROM teams t
WHERE t.id IN (SELECT team_id FROM team_users WHERE user_id=$1)
ORDER BY t.id`
)

// FindUserByHash returns the first user with the given hash and its team references.
func (p *Postgres) FindUserByHash(ctx context.Context, hash string) (*entities.User, error) {
	var u entities.User
	if err := p.db.QueryRow(ctx, selectUserByHashQuery, hash).Scan(&u.ID, &u.Hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	rows, err := p.db.Query(ctx, selectUserTeamRefs, u.ID)
	if err != nil {
		return nil, fmt.Errorf("select user teams: %w", err)
	}
	defer rows.Close()

	u.Teams = make([]entities.TeamRef, 0)
	for rows.Next() {
		var ref entities.TeamRef
		if err := rows.Scan(&ref.ID, &ref.Hash); err != nil {
			return nil, fmt.Errorf("scan user team: %w", err)
		}
		u.Teams = append(u.Teams, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user teams: %w", err)
	}
	return &u, nil
}

// UserTeams lists the distinct teams the first user with userHash belongs to.
func (p *Postgres) UserTeams(ctx context.Context, userHash string) ([]entities.Team, error) {
	var userID int64
	var hash string
	if err := p.db.QueryRow(ctx, selectUserByHashQuery, userHash).Scan(&userID, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	rows, err := p.db.Query(ctx, selectUserTeamsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select user teams: %w", err)
	}
	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Hash, &t.CreationDate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.readMembers(ctx, p.db, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Users = members
	}
	return teams, nil
}
