package gormrepo

import (
	"time"

	"orion-teams/internal/entities"
)

type teamModel struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Hash         string    `gorm:"column:hash;not null;index"`
	CreationDate time.Time `gorm:"column:creation_date;not null"`
}

func (teamModel) TableName() string { return "teams" }

type userModel struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Hash string `gorm:"column:hash;not null;index"`
}

func (userModel) TableName() string { return "users" }

type membershipModel struct {
	ID       int64     `gorm:"primaryKey;column:id"`
	TeamID   int64     `gorm:"column:team_id;not null"`
	UserID   int64     `gorm:"column:user_id;not null"`
	JoinedAt time.Time `gorm:"column:joined_at;not null"`
}

func (membershipModel) TableName() string { return "team_users" }

func (m teamModel) toEntity(members []userModel) entities.Team {
	users := make([]entities.User, 0, len(members))
	for _, u := range members {
		users = append(users, entities.User{ID: u.ID, Hash: u.Hash})
	}
	return entities.Team{
		ID:           m.ID,
		Hash:         m.Hash,
		CreationDate: m.CreationDate,
		Users:        users,
	}
}
