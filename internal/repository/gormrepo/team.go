package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"orion-teams/internal/entities"

	"gorm.io/gorm"
)

// CreateTeam inserts a team row and assigns its identifier.
func (g *Gorm) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	row := teamModel{Hash: team.Hash, CreationDate: team.CreationDate}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		g.log.Errorw("failed to insert team", "error", err, "hash", team.Hash)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	created := row.toEntity(nil)
	g.log.Infow("team created", "team_id", created.ID, "hash", created.Hash)
	return &created, nil
}

// FindTeamByHash fetches a team with its members.
func (g *Gorm) FindTeamByHash(ctx context.Context, hash string) (*entities.Team, error) {
	return g.loadTeam(g.db.WithContext(ctx), hash)
}

func (g *Gorm) loadTeam(tx *gorm.DB, hash string) (*entities.Team, error) {
	var row teamModel
	if err := tx.First(&row, "hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := g.readMembers(tx, row.ID)
	if err != nil {
		return nil, err
	}
	team := row.toEntity(members)
	return &team, nil
}

func (g *Gorm) readMembers(tx *gorm.DB, teamID int64) ([]userModel, error) {
	members := make([]userModel, 0)
	err := tx.Table("team_users tu").
		Select("u.id, u.hash").
		Joins("JOIN users u ON u.id = tu.user_id").
		Where("tu.team_id = ?", teamID).
		Order("tu.id").
		Scan(&members).Error
	if err != nil {
		g.log.Errorw("failed to select members", "error", err, "team_id", teamID)
		return nil, fmt.Errorf("select members: %w", err)
	}
	return members, nil
}
