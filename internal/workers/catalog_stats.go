package workers

import (
	"context"
	"time"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/models"
)

// catalogStatsWorker periodically runs the catalog listing and featured
// queries. It keeps the hot query paths warm and surfaces catalog size in
// the server log for operators.
type catalogStatsWorker struct {
	catalog  service.CatalogService
	interval time.Duration
	logger   *logger.Logger
}

func newCatalogStatsWorker(catalog service.CatalogService, interval time.Duration, logger *logger.Logger) *catalogStatsWorker {
	return &catalogStatsWorker{
		catalog:  catalog,
		interval: interval,
		logger:   logger,
	}
}

func (c *catalogStatsWorker) Run() {
	go func() {
		t := time.NewTicker(c.interval)
		defer t.Stop()

		for range t.C {
			c.report()
		}
	}()
}

func (c *catalogStatsWorker) report() {
	log := c.logger.GetChildLogger()

	ctx, cancel := context.WithTimeout(context.Background(), c.interval)
	defer cancel()

	movies, err := c.catalog.ListMovies(ctx, models.MovieFilter{})
	if err != nil {
		log.Err(err).Str("func", "*catalogStatsWorker.report").Msg("error: listing catalog")
		return
	}

	featured, err := c.catalog.FeaturedMovies(ctx, 0)
	if err != nil {
		log.Err(err).Str("func", "*catalogStatsWorker.report").Msg("error: listing featured movies")
		return
	}

	log.Info().
		Int("movies", len(movies)).
		Int("featured", len(featured)).
		Msg("catalog stats")
}
