package handlers_fiber

import (
	"net/http"

	"orion-teams/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// writeError answers with a generic 500; the cause stays in the log.
func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	h.log.Errorw("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return c.Status(http.StatusInternalServerError).JSON(errorResponse(dto.INTERNAL, "internal error"))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
