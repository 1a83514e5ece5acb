package handlers_fiber

import (
	"net/http"

	"orion-teams/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// PostTeamCreate creates an empty team.
func (h *Handler) PostTeamCreate(c *fiber.Ctx) error {
	team, err := h.uc.CreateTeam(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTO(*team))
}

// GetTeamFind returns the team by hash, or null.
func (h *Handler) GetTeamFind(c *fiber.Ctx) error {
	hashTeam := utils.CopyString(c.Params("hashTeam"))

	team, err := h.uc.FindTeam(c.UserContext(), hashTeam)
	if err != nil {
		return h.writeError(c, err)
	}
	if team == nil {
		return c.Status(http.StatusOK).JSON(nil)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTO(*team))
}

// PostTeamJoin adds the user from the hashUser form field to the team from hashTeam.
// Responds with null when the team does not exist.
func (h *Handler) PostTeamJoin(c *fiber.Ctx) error {
	hashTeam := utils.CopyString(c.FormValue("hashTeam"))
	hashUser := utils.CopyString(c.FormValue("hashUser"))

	team, err := h.uc.JoinTeam(c.UserContext(), hashTeam, hashUser)
	if err != nil {
		return h.writeError(c, err)
	}
	if team == nil {
		return c.Status(http.StatusOK).JSON(nil)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTO(*team))
}

// GetUserTeams lists the teams of a user.
func (h *Handler) GetUserTeams(c *fiber.Ctx) error {
	hashUser := utils.CopyString(c.Params("hashUser"))

	teams, err := h.uc.UserTeams(c.UserContext(), hashUser)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTOs(teams))
}
