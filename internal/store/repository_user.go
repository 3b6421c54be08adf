package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// principal creation and lookup against the "users" table.
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

// CreateUser persists a new principal and its default zone in one
// transaction, returning the user with UserID and CreatedAt assigned.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = now()
	err := r.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert(usersTable).
			Columns("login", "password_hash", "created_at").
			Values(user.Login, user.PasswordHash, user.CreatedAt).
			Suffix("RETURNING user_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		// create user in db
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrLoginAlreadyExists
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		// every principal owns a default zone from the start
		query, args, err = r.db.builder.
			Insert(zonesTable).
			Columns("owner_login", "zone_name", "change_seq", "created_at").
			Values(user.Login, models.DefaultZoneName, 0, user.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error creating user")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByLogin retrieves the user whose Login matches the one provided in
// the input [models.User].
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("user_id", "login", "password_hash", "created_at").
		From(usersTable).
		Where("login = ?", user.Login).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Login, &foundUser.PasswordHash, &foundUser.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
