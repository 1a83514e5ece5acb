// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users under a generated hash.
type Team struct {
	ID           int64
	Hash         string
	CreationDate time.Time
	Users        []User
}

// NewTeam builds an unsaved team with a fresh hash and no members.
func NewTeam(now time.Time) Team {
	return Team{
		Hash:         uuid.NewString(),
		CreationDate: now,
		Users:        make([]User, 0),
	}
}

// AddUser appends u to the member list. Duplicates are kept.
func (t *Team) AddUser(u User) {
	t.Users = append(t.Users, u)
}

// Ref returns the flat reference stored on the user side.
func (t Team) Ref() TeamRef {
	return TeamRef{ID: t.ID, Hash: t.Hash}
}
