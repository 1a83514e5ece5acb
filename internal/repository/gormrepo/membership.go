package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orion-teams/internal/entities"

	"gorm.io/gorm"
)

// JoinTeam attaches the user identified by userHash to the team, creating the user when needed.
func (g *Gorm) JoinTeam(ctx context.Context, teamHash, userHash string) (*entities.Team, error) {
	var team *entities.Team
	var created bool

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		team, err = g.loadTeam(tx, teamHash)
		if err != nil {
			return err
		}

		row, err := g.firstUser(tx, userHash)
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			row = &userModel{Hash: userHash}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("insert user: %w", err)
			}
			created = true
		case err != nil:
			return err
		}
		row.Hash = userHash

		link := membershipModel{TeamID: team.ID, UserID: row.ID, JoinedAt: time.Now().UTC()}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("insert membership: %w", err)
		}

		user := entities.NewUser(row.Hash)
		user.ID = row.ID
		user.AddTeam(*team)
		team.AddUser(user)
		return nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrTeamNotFound) {
			g.log.Errorw("failed to join team", "team", teamHash, "user", userHash, "error", err)
		}
		return nil, err
	}

	g.log.Infow("user joined team", "team", teamHash, "user", userHash, "user_created", created)
	return team, nil
}
