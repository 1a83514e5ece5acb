package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"orion-teams/internal/entities"

	"gorm.io/gorm"
)

func (g *Gorm) firstUser(tx *gorm.DB, hash string) (*userModel, error) {
	var row userModel
	if err := tx.First(&row, "hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &row, nil
}

// FindUserByHash returns the first user with the given hash and its team references.
func (g *Gorm) FindUserByHash(ctx context.Context, hash string) (*entities.User, error) {
	tx := g.db.WithContext(ctx)
	row, err := g.firstUser(tx, hash)
	if err != nil {
		return nil, err
	}

	var refs []teamModel
	err = tx.Table("team_users tu").
		Select("t.id, t.hash").
		Joins("JOIN teams t ON t.id = tu.team_id").
		Where("tu.user_id = ?", row.ID).
		Order("tu.id").
		Scan(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("select user teams: %w", err)
	}

	user := entities.User{ID: row.ID, Hash: row.Hash, Teams: make([]entities.TeamRef, 0, len(refs))}
	for _, r := range refs {
		user.Teams = append(user.Teams, entities.TeamRef{ID: r.ID, Hash: r.Hash})
	}
	return &user, nil
}

// UserTeams lists the distinct teams the first user with userHash belongs to.
func (g *Gorm) UserTeams(ctx context.Context, userHash string) ([]entities.Team, error) {
	tx := g.db.WithContext(ctx)
	row, err := g.firstUser(tx, userHash)
	if err != nil {
		return nil, err
	}

	var rows []teamModel
	joined := tx.Model(&membershipModel{}).Select("team_id").Where("user_id = ?", row.ID)
	if err := tx.Where("id IN (?)", joined).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select user teams: %w", err)
	}

	teams := make([]entities.Team, 0, len(rows))
	for _, r := range rows {
		members, err := g.readMembers(tx, r.ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, r.toEntity(members))
	}
	return teams, nil
}
