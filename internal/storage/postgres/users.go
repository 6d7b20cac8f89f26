package postgres

import (
	"context"
	"errors"
	"fmt"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db  Querier
	log *zap.Logger
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool, log *zap.Logger) *UserRepo {
	return newUserRepo(db, log)
}

func newUserRepo(db Querier, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log.Named("user_repo")}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx, log: r.log}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithProfile inserts the user and its initial profile in one transaction.
func (r *UserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.ProfileBase) (*models.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	created, err := scanUser(tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING `+userColumns,
		user.Email, user.PasswordHash, string(user.Role),
	))
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			r.log.Info("user insert rejected", zap.String("email", user.Email), zap.Error(err))
			return nil, fmt.Errorf("failed to create user: %w", cerr)
		}
		r.log.Error("user insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if profile != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (user_id, first_name, last_name, phone, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
			created.ID, profile.FirstName, profile.LastName, profile.Phone, profile.Address,
		)
		if err != nil {
			r.log.Error("profile insert failed", zap.Int64("user_id", created.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}
	return created, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
