package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.Principal] with server-assigned fields (UserID, CreatedAt).
//
// The Password field of the input must already be the bcrypt hash; the
// repository stores it verbatim and never inspects it.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.Principal) (models.Principal, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Password, user.Name, user.PhotoURL, user.Provider)

	var created models.Principal
	if err := row.Scan(&created.UserID, &created.Email, &created.Password, &created.Name, &created.PhotoURL, &created.Provider, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Principal{}, ErrEmailAlreadyExists
		default:
			return models.Principal{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	var found models.Principal
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&found.UserID, &found.Email, &found.Password, &found.Name, &found.PhotoURL, &found.Provider, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Principal{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning user row")
		return models.Principal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByID retrieves the account with the given internal identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.Principal, error) {
	log := logger.FromContext(ctx)

	var found models.Principal
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&found.UserID, &found.Email, &found.Password, &found.Name, &found.PhotoURL, &found.Provider, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Principal{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning user row")
		return models.Principal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpsertFederatedUser inserts a federated account on first sign-in, or
// refreshes its display name and photo on later ones. Federated accounts
// carry no password hash.
func (r *userRepository) UpsertFederatedUser(ctx context.Context, user models.Principal) (models.Principal, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertFederatedUser, user.Email, user.Name, user.PhotoURL, user.Provider)

	var saved models.Principal
	if err := row.Scan(&saved.UserID, &saved.Email, &saved.Password, &saved.Name, &saved.PhotoURL, &saved.Provider, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertFederatedUser").Msg("error: upserting federated user")
		return models.Principal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdateProfile applies the non-nil fields of update to the account record
// and returns the refreshed principal.
//
// The SET clause is assembled with squirrel so only the supplied fields are
// touched; an update with no fields set returns the current record.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil && update.PhotoURL == nil {
		return r.FindUserByID(ctx, userID)
	}

	builder := squirrel.Update("users").
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, password_hash, name, photo_url, provider, created_at").
		PlaceholderFormat(squirrel.Dollar)
	if update.Name != nil {
		builder = builder.Set("name", strings.TrimSpace(*update.Name))
	}
	if update.PhotoURL != nil {
		builder = builder.Set("photo_url", strings.TrimSpace(*update.PhotoURL))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building update query")
		return models.Principal{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var updated models.Principal
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&updated.UserID, &updated.Email, &updated.Password, &updated.Name, &updated.PhotoURL, &updated.Provider, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Principal{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: scanning updated user row")
		return models.Principal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}
