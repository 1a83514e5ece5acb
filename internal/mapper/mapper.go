// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"orion-teams/internal/entities"
	"orion-teams/internal/transport/http/dto"
)

// ToTeamDTO maps entities.Team to transport model.
func ToTeamDTO(team entities.Team) dto.Team {
	users := make([]dto.User, 0, len(team.Users))
	for _, u := range team.Users {
		users = append(users, ToUserDTO(u))
	}

	return dto.Team{
		ID:           team.ID,
		Hash:         team.Hash,
		CreationDate: team.CreationDate,
		Users:        users,
	}
}

// ToTeamDTOs maps a team list; the result is never nil.
func ToTeamDTOs(teams []entities.Team) []dto.Team {
	out := make([]dto.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToTeamDTO(t))
	}
	return out
}

// ToUserDTO drops the user's team references.
func ToUserDTO(u entities.User) dto.User {
	return dto.User{
		ID:   u.ID,
		Hash: u.Hash,
	}
}
