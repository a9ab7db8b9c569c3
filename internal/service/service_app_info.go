package service

import (
	"context"
	"errors"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
)

// ErrVersionIsNotSpecified is returned when the application version is
// missing from the configuration.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Version(ctx context.Context) string {
	return s.appVersion
}
