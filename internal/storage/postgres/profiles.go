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

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
// A single row carries the columns of both specializations; reads project it
// onto the owner's role.
type ProfileRepo struct {
	db  Querier
	log *zap.Logger
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool, log *zap.Logger) *ProfileRepo {
	return newProfileRepo(db, log)
}

func newProfileRepo(db Querier, log *zap.Logger) *ProfileRepo {
	return &ProfileRepo{db: db, log: log.Named("profile_repo")}
}

// WithTx creates a new ProfileRepo bound to the transaction.
func (r *ProfileRepo) WithTx(tx pgx.Tx) storage.ProfileRepository {
	return &ProfileRepo{db: tx, log: r.log}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

// GetByUserID retrieves the profile owned by userID.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT p.user_id, p.first_name, p.last_name, p.phone, p.address,
		       p.resume_url, p.company_name, p.company_description,
		       p.created_at, p.updated_at, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	var (
		base                                       models.ProfileBase
		resumeURL, companyName, companyDescription *string
		role                                       models.Role
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&base.UserID,
		&base.FirstName,
		&base.LastName,
		&base.Phone,
		&base.Address,
		&resumeURL,
		&companyName,
		&companyDescription,
		&base.CreatedAt,
		&base.UpdatedAt,
		&role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("profile lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}

	profile := models.NewProfile(base, role)
	if profile.Employer != nil {
		profile.Employer.CompanyName = companyName
		profile.Employer.CompanyDescription = companyDescription
	} else {
		profile.JobSeeker.ResumeURL = resumeURL
	}
	return profile, nil
}

// Upsert replaces every column of the profile row, inserting it when absent.
// Columns belonging to the other specialization are cleared.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, bool, error) {
	var resumeURL, companyName, companyDescription *string
	if profile.JobSeeker != nil {
		resumeURL = profile.JobSeeker.ResumeURL
	}
	if profile.Employer != nil {
		companyName = profile.Employer.CompanyName
		companyDescription = profile.Employer.CompanyDescription
	}

	query := `
		INSERT INTO profiles (user_id, first_name, last_name, phone, address, resume_url, company_name, company_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			resume_url = EXCLUDED.resume_url,
			company_name = EXCLUDED.company_name,
			company_description = EXCLUDED.company_description,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Address,
		resumeURL,
		companyName,
		companyDescription,
	).Scan(&inserted)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, false, fmt.Errorf("failed to upsert profile: %w", cerr)
		}
		r.log.Error("profile upsert failed", zap.Int64("user_id", profile.UserID), zap.Error(err))
		return nil, false, fmt.Errorf("failed to upsert profile: %w", err)
	}

	saved, err := r.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, false, err
	}
	return saved, inserted, nil
}
