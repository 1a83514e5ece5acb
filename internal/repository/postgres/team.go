package postgres

import (
	"context"
	"errors"
	"fmt"

	"orion-teams/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery        = `INSERT INTO teams(hash, creation_date) VALUES ($1, $2) RETURNING id`
	selectTeamByHashQuery  = `SELECT id, hash, creation_date FROM teams WHERE hash=$1 ORDER BY id LIMIT 1`
	selectTeamMembersQuery = `
SELECT u.id, u.hash
FROM team_users tu
JOIN users u ON u.id = tu.user_id
WHERE tu.team_id=$1
ORDER BY tu.id`
)

// CreateTeam inserts a team row and assigns its identifier.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	if err := p.db.QueryRow(ctx, insertTeamQuery, team.Hash, team.CreationDate).Scan(&team.ID); err != nil {
		p.log.Errorw("failed to insert team", "error", err, "hash", team.Hash)
		return nil, fmt.Errorf("insert team: %w", err)
	}
	if team.Users == nil {
		team.Users = make([]entities.User, 0)
	}

	p.log.Infow("team created", "team_id", team.ID, "hash", team.Hash)
	return &team, nil
}

// FindTeamByHash fetches a team with its members.
func (p *Postgres) FindTeamByHash(ctx context.Context, hash string) (*entities.Team, error) {
	return p.loadTeam(ctx, p.db, hash)
}

func (p *Postgres) loadTeam(ctx context.Context, q querier, hash string) (*entities.Team, error) {
	var team entities.Team
	if err := q.QueryRow(ctx, selectTeamByHashQuery, hash).Scan(&team.ID, &team.Hash, &team.CreationDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.readMembers(ctx, q, team.ID)
	if err != nil {
		return nil, err
	}
	team.Users = members
	return &team, nil
}

func (p *Postgres) readMembers(ctx context.Context, q querier, teamID int64) ([]entities.User, error) {
	rows, err := q.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		p.log.Errorw("failed to select members", "error", err, "team_id", teamID)
		return nil, fmt.Errorf("select members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Hash); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}
