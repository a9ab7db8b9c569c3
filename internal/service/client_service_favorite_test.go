package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/models"
)

func newFavoriteFixture(t *testing.T, signedIn bool) (ClientFavoriteService, *fakeCatalogClient, *session.Provider) {
	t.Helper()

	identity := newStubIdentity()
	provider := session.NewProvider(identity, logger.Nop())
	t.Cleanup(provider.Close)

	if signedIn {
		_, err := provider.SignIn(context.Background(), "viewer@example.com", "Secret1")
		require.NoError(t, err)
	}

	client := &fakeCatalogClient{}
	return NewClientFavoriteService(client, provider, logger.Nop()), client, provider
}

func TestClientFavoriteService_AddFavorite_UsesSessionEmail(t *testing.T) {
	svc, _, _ := newFavoriteFixture(t, true)

	favorite, err := svc.AddFavorite(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "viewer@example.com", favorite.UserEmail)
	assert.Equal(t, int64(42), favorite.MovieID)
}

func TestClientFavoriteService_AddFavorite_RequiresSession(t *testing.T) {
	svc, _, _ := newFavoriteFixture(t, false)

	_, err := svc.AddFavorite(context.Background(), 42)

	assert.ErrorIs(t, err, adapter.ErrNoActiveSession)
}

func TestClientFavoriteService_ListFavorites_ReturnsMovies(t *testing.T) {
	svc, client, _ := newFavoriteFixture(t, true)
	client.favorites = models.FavoriteListResponse{
		Favorites: []models.Favorite{{FavoriteID: 1, UserEmail: "viewer@example.com", MovieID: 1}},
		Movies:    []models.Movie{{MovieID: 1, Title: "Heat"}},
	}

	got, err := svc.ListFavorites(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Favorites, 1)
	require.Len(t, got.Movies, 1)
	assert.Equal(t, "Heat", got.Movies[0].Title)
}

func TestClientFavoriteService_RemoveFavorite_RequiresSession(t *testing.T) {
	svc, _, _ := newFavoriteFixture(t, false)

	err := svc.RemoveFavorite(context.Background(), 1)

	assert.ErrorIs(t, err, adapter.ErrNoActiveSession)
}

func TestClientFavoriteService_RemoveFavorite_PropagatesAdapterError(t *testing.T) {
	svc, client, _ := newFavoriteFixture(t, true)
	client.favoriteErr = adapter.ErrNotFound

	err := svc.RemoveFavorite(context.Background(), 7)

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
