package postgres

import (
	"context"
	"errors"
	"fmt"

	"orion-teams/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery       = `INSERT INTO users(hash) VALUES ($1) RETURNING id`
	insertMembershipQuery = `INSERT INTO team_users(team_id, user_id) VALUES ($1, $2) RETURNING id, joined_at`
)

// JoinTeam attaches the user identified by userHash to the team, creating the user when needed.
func (p *Postgres) JoinTeam(ctx context.Context, teamHash, userHash string) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := p.loadTeam(ctx, tx, teamHash)
	if err != nil {
		return nil, err
	}

	user, created, err := p.resolveUser(ctx, tx, userHash)
	if err != nil {
		return nil, err
	}
	user.Hash = userHash

	m := entities.Membership{TeamID: team.ID, UserID: user.ID}
	if err := tx.QueryRow(ctx, insertMembershipQuery, m.TeamID, m.UserID).Scan(&m.ID, &m.JoinedAt); err != nil {
		p.log.Errorw("failed to insert membership", "error", err, "team_id", team.ID, "user_id", user.ID)
		return nil, fmt.Errorf("insert membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	user.AddTeam(*team)
	team.AddUser(user)

	p.log.Infow("user joined team", "team", team.Hash, "user", userHash, "user_created", created, "membership_id", m.ID)
	return team, nil
}

func (p *Postgres) resolveUser(ctx context.Context, tx pgx.Tx, hash string) (entities.User, bool, error) {
	u := entities.NewUser(hash)
	err := tx.QueryRow(ctx, selectUserByHashQuery, hash).Scan(&u.ID, &u.Hash)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return u, false, fmt.Errorf("get user: %w", err)
	}

	if err := tx.QueryRow(ctx, insertUserQuery, hash).Scan(&u.ID); err != nil {
		p.log.Errorw("failed to insert user", "error", err, "hash", hash)
		return u, false, fmt.Errorf("insert user: %w", err)
	}
	return u, true, nil
}
