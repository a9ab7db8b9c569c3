package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/models"
)

// spyCatalogService counts RefreshCache calls.
type spyCatalogService struct {
	calls atomic.Int64
	err   error
}

func (s *spyCatalogService) ListMovies(_ context.Context, _ models.MovieFilter) ([]models.Movie, error) {
	return nil, nil
}

func (s *spyCatalogService) FeaturedMovies(_ context.Context, _ int) ([]models.Movie, error) {
	return nil, nil
}

func (s *spyCatalogService) GetMovie(_ context.Context, _ int64) (models.Movie, error) {
	return models.Movie{}, nil
}

func (s *spyCatalogService) CreateMovie(_ context.Context, movie models.Movie) (models.Movie, error) {
	return movie, nil
}

func (s *spyCatalogService) UpdateMovie(_ context.Context, _ models.MovieUpdate) error { return nil }

func (s *spyCatalogService) DeleteMovie(_ context.Context, _ int64) error { return nil }

func (s *spyCatalogService) RefreshCache(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

var _ ClientCatalogService = (*spyCatalogService)(nil)

func TestClientRefreshJob_Start_RefreshesOnTicker(t *testing.T) {
	spy := &spyCatalogService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshCache should have ticked several times, got %d", got)
}

func TestClientRefreshJob_Stop_HaltsRefreshes(t *testing.T) {
	spy := &spyCatalogService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	before := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, spy.calls.Load())
}

func TestClientRefreshJob_Stop_WithoutStartIsNoOp(t *testing.T) {
	job := NewClientRefreshJob(&spyCatalogService{})
	require.NotPanics(t, job.Stop)
}

func TestClientRefreshJob_Restart_StopsPreviousJob(t *testing.T) {
	spy := &spyCatalogService{}
	job := NewClientRefreshJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.LessOrEqual(t, got, int64(5), "restart must not leave two tickers running, got %d calls", got)
}

func TestClientRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyCatalogService{}
	job := NewClientRefreshJob(spy)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	before := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, spy.calls.Load())
	job.Stop()
}
