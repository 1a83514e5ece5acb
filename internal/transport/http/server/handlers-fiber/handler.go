// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"orion-teams/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the team API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterRoutes mounts the team endpoints on router.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	teams := router.Group("/teams")
	teams.Post("/create", h.PostTeamCreate)
	teams.Get("/find/:hashTeam", h.GetTeamFind)
	teams.Post("/join", h.PostTeamJoin)
	teams.Get("/user/:hashUser", h.GetUserTeams)
}
