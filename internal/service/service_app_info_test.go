package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
)

func TestAppInfoService_Version(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.Version(context.Background()))
}

func TestAppInfoService_RequiresVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
