package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/models"
)

// favoriteService is the concrete implementation of FavoriteService.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	movieRepository    store.MovieRepository
	logger             *logger.Logger
}

// NewFavoriteService constructs a FavoriteService over the favorite and
// movie repositories.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, movieRepository store.MovieRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		movieRepository:    movieRepository,
		logger:             logger,
	}
}

// AddFavorite links a movie to the user's favorites.
//
// Returns:
//   - [ErrInvalidDataProvided] if the email or movie id is missing.
//   - A wrapped storage error otherwise (e.g.
//     [store.ErrFavoriteAlreadyExists], [store.ErrMovieNotFound]).
func (f *favoriteService) AddFavorite(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if userEmail == "" || movieID <= 0 {
		return models.Favorite{}, ErrInvalidDataProvided
	}

	created, err := f.favoriteRepository.AddFavorite(ctx, models.Favorite{
		UserEmail: strings.ToLower(userEmail),
		MovieID:   movieID,
	})
	if err != nil {
		log.Err(err).Str("email", userEmail).Int64("movie_id", movieID).Msg("favorite creation ended with error")
		return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return created, nil
}

// ListFavorites returns the user's favorite links with the full movie
// records attached. A favorite whose movie has since been deleted is
// skipped rather than failing the whole listing.
func (f *favoriteService) ListFavorites(ctx context.Context, userEmail string) (models.FavoriteListResponse, error) {
	log := logger.FromContext(ctx)

	if userEmail == "" {
		return models.FavoriteListResponse{}, ErrInvalidDataProvided
	}

	favorites, err := f.favoriteRepository.ListFavoritesByEmail(ctx, strings.ToLower(userEmail))
	if err != nil {
		log.Err(err).Str("email", userEmail).Msg("favorite listing ended with error")
		return models.FavoriteListResponse{}, fmt.Errorf("favorite listing ended with error: %w", err)
	}

	response := models.FavoriteListResponse{
		Favorites: make([]models.Favorite, 0, len(favorites)),
		Movies:    make([]models.Movie, 0, len(favorites)),
	}
	for _, favorite := range favorites {
		movie, err := f.movieRepository.GetMovie(ctx, favorite.MovieID)
		if err != nil {
			if errors.Is(err, store.ErrMovieNotFound) {
				log.Warn().Int64("movie_id", favorite.MovieID).Msg("favorite points at a removed movie, skipping")
				continue
			}
			return models.FavoriteListResponse{}, fmt.Errorf("favorite movie lookup failed: %w", err)
		}
		response.Favorites = append(response.Favorites, favorite)
		response.Movies = append(response.Movies, movie)
	}

	return response, nil
}

// RemoveFavorite deletes a favorite link owned by the requester.
//
// Returns [ErrNotCreator] when the favorite belongs to a different account.
func (f *favoriteService) RemoveFavorite(ctx context.Context, requesterEmail string, favoriteID int64) error {
	log := logger.FromContext(ctx)

	favorite, err := f.favoriteRepository.GetFavorite(ctx, favoriteID)
	if err != nil {
		return fmt.Errorf("favorite lookup failed: %w", err)
	}

	if !strings.EqualFold(favorite.UserEmail, requesterEmail) {
		log.Warn().
			Int64("favorite_id", favoriteID).
			Str("requester", requesterEmail).
			Msg("favorite removal attempted by non-owner")
		return ErrNotCreator
	}

	if err = f.favoriteRepository.RemoveFavorite(ctx, favoriteID); err != nil {
		log.Err(err).Int64("favorite_id", favoriteID).Msg("favorite removal ended with error")
		return fmt.Errorf("favorite removal ended with error: %w", err)
	}

	return nil
}
