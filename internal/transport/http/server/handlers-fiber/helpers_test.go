package handlers_fiber

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"orion-teams/internal/entities"
	"orion-teams/internal/transport/http/dto"
	"orion-teams/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) CreateTeam(ctx context.Context) (*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) FindTeam(ctx context.Context, hashTeam string) (*entities.Team, error) {
	args := m.Called(ctx, hashTeam)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) JoinTeam(ctx context.Context, hashTeam, hashUser string) (*entities.Team, error) {
	args := m.Called(ctx, hashTeam, hashUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *usecaseMock) UserTeams(ctx context.Context, hashUser string) ([]entities.Team, error) {
	args := m.Called(ctx, hashUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func newTestApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	NewHandler(zap.NewNop().Sugar(), uc).RegisterRoutes(app)
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestWriteErrorHidesCause(t *testing.T) {
	h := NewHandler(zap.NewNop().Sugar(), &usecaseMock{})
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.writeError(c, errors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, dto.INTERNAL, body.Error.Code)
	require.Equal(t, "internal error", body.Error.Message)
}

func TestPostTeamCreate(t *testing.T) {
	uc := &usecaseMock{}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.On("CreateTeam", mock.Anything).Return(&entities.Team{ID: 1, Hash: "T1", CreationDate: created, Users: []entities.User{}}, nil)

	resp, err := newTestApp(uc).Test(httptest.NewRequest(http.MethodPost, "/teams/create", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"id":1,"hash":"T1","creationDate":"2024-01-02T03:04:05Z","users":[]}`, readBody(t, resp))
}

func TestPostTeamCreateStorageFailure(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CreateTeam", mock.Anything).Return(nil, errors.New("db down"))

	resp, err := newTestApp(uc).Test(httptest.NewRequest(http.MethodPost, "/teams/create", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.NotContains(t, readBody(t, resp), "db down")
}

func TestGetTeamFind(t *testing.T) {
	tests := []struct {
		name       string
		team       *entities.Team
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			team:       &entities.Team{ID: 3, Hash: "T3", CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Users: []entities.User{{ID: 9, Hash: "U9"}}},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":3,"hash":"T3","creationDate":"2024-01-01T00:00:00Z","users":[{"id":9,"hash":"U9"}]}`,
		},
		{
			name:       "absent is null",
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "storage failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"INTERNAL","message":"internal error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &usecaseMock{}
			if tt.team != nil {
				uc.On("FindTeam", mock.Anything, "T3").Return(tt.team, nil)
			} else {
				uc.On("FindTeam", mock.Anything, "T3").Return(nil, tt.err)
			}

			resp, err := newTestApp(uc).Test(httptest.NewRequest(http.MethodGet, "/teams/find/T3", nil))
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, readBody(t, resp))
		})
	}
}

func TestPostTeamJoinReadsFormFields(t *testing.T) {
	uc := &usecaseMock{}
	joined := &entities.Team{ID: 1, Hash: "T1", CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Users: []entities.User{{ID: 5, Hash: "U1"}, {ID: 5, Hash: "U1"}}}
	uc.On("JoinTeam", mock.Anything, "T1", "U1").Return(joined, nil)

	form := url.Values{"hashTeam": {"T1"}, "hashUser": {"U1"}}
	req := httptest.NewRequest(http.MethodPost, "/teams/join", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := newTestApp(uc).Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"id":1,"hash":"T1","creationDate":"2024-01-01T00:00:00Z","users":[{"id":5,"hash":"U1"},{"id":5,"hash":"U1"}]}`, readBody(t, resp))
	uc.AssertExpectations(t)
}

func TestPostTeamJoinUnknownTeamIsNull(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("JoinTeam", mock.Anything, "missing", "U1").Return(nil, nil)

	form := url.Values{"hashTeam": {"missing"}, "hashUser": {"U1"}}
	req := httptest.NewRequest(http.MethodPost, "/teams/join", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := newTestApp(uc).Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "null", readBody(t, resp))
}

func TestPostTeamJoinMissingFieldsPassEmpty(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("JoinTeam", mock.Anything, "", "").Return(nil, nil)

	resp, err := newTestApp(uc).Test(httptest.NewRequest(http.MethodPost, "/teams/join", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "null", readBody(t, resp))
	uc.AssertExpectations(t)
}

func TestGetUserTeams(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("UserTeams", mock.Anything, "ghost").Return([]entities.Team{}, nil)

	resp, err := newTestApp(uc).Test(httptest.NewRequest(http.MethodGet, "/teams/user/ghost", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "[]", readBody(t, resp))
}
