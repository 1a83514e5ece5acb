package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"orion-teams/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToTeamDTOOmitsBackReferences(t *testing.T) {
	created := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	team := entities.Team{
		ID:           1,
		Hash:         "T1",
		CreationDate: created,
		Users: []entities.User{
			{ID: 5, Hash: "U1", Teams: []entities.TeamRef{{ID: 1, Hash: "T1"}}},
		},
	}

	raw, err := json.Marshal(ToTeamDTO(team))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"hash":"T1","creationDate":"2024-03-04T05:06:07Z","users":[{"id":5,"hash":"U1"}]}`, string(raw))
}

func TestToTeamDTOEmptyUsersIsArray(t *testing.T) {
	raw, err := json.Marshal(ToTeamDTO(entities.Team{ID: 2, Hash: "T2"}))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"users":[]`)
}

func TestToTeamDTOsNeverNil(t *testing.T) {
	out := ToTeamDTOs(nil)
	require.NotNil(t, out)
	require.Empty(t, out)

	out = ToTeamDTOs([]entities.Team{{ID: 1}, {ID: 2}})
	require.Len(t, out, 2)
	require.Equal(t, int64(2), out[1].ID)
}
