package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/teams/find/:hashTeam", func(c *fiber.Ctx) error { return c.SendString("null") })
	app.Post("/teams/create", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusInternalServerError) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teams/find/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/teams/create", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "/teams/find/abc", first["path"])
	require.Equal(t, "/teams/find/:hashTeam", first["route"])
	require.NotEmpty(t, first["request_id"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "access", entries[1].LoggerName)
}
