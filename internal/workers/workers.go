package workers

import (
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the server's background workers. Workers whose
// configuration is absent are skipped.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.RefreshInterval > 0 {
		workers.workers = append(workers.workers, newCatalogStatsWorker(services.CatalogService, cfg.RefreshInterval, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
