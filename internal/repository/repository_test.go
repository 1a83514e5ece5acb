package repository

import (
	"context"
	"testing"

	"orion-teams/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.Config{}
	log := zap.NewNop().Sugar()

	for _, name := range []string{BackendPostgres, BackendGorm} {
		repo, err := New(context.Background(), name, log, cfg)
		require.NoError(t, err, name)
		require.NotNil(t, repo, name)
	}

	_, err := New(context.Background(), "mongo", log, cfg)
	require.EqualError(t, err, "unknown repo backend: mongo")
}
