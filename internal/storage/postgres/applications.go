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

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db  Querier
	log *zap.Logger
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool, log *zap.Logger) *ApplicationRepo {
	return newApplicationRepo(db, log)
}

func newApplicationRepo(db Querier, log *zap.Logger) *ApplicationRepo {
	return &ApplicationRepo{db: db, log: log.Named("application_repo")}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx, log: r.log}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	job := &models.ApplicationJob{}
	applicant := &models.ApplicantSummary{}
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantID,
		&app.CoverLetter,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
		&job.Title,
		&job.Location,
		&job.JobType,
		&job.Status,
		&job.EmployerID,
		&job.CompanyName,
		&applicant.Email,
		&applicant.FirstName,
		&applicant.LastName,
		&applicant.ResumeURL,
	)
	if err != nil {
		return nil, err
	}
	job.ID = app.JobID
	applicant.ID = app.ApplicantID
	app.Job = job
	app.Applicant = applicant
	return &app, nil
}

// Create inserts an application. The (job_id, applicant_id) unique
// constraint surfaces as storage.ErrConflict and a missing job as
// storage.ErrForeignKey.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (job_id, applicant_id, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, app.JobID, app.ApplicantID, app.CoverLetter, string(app.Status)).Scan(&id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			r.log.Info("application insert rejected",
				zap.Int64("job_id", app.JobID),
				zap.Int64("applicant_id", app.ApplicantID),
				zap.Error(err))
			return nil, fmt.Errorf("failed to create application: %w", cerr)
		}
		r.log.Error("application insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves an application with its job and applicant summaries.
func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query, args := newApplicationQuery().byID(id)
	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("application lookup failed", zap.Int64("application_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get application by ID %d: %w", id, err)
	}
	return app, nil
}

// List returns one page of applications matching the filter and the total match count.
func (r *ApplicationRepo) List(ctx context.Context, filter storage.ApplicationFilter, page storage.Page) ([]models.Application, int, error) {
	q := newApplicationQuery()

	countSQL, countArgs := q.count(filter)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.log.Error("application count failed", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	apps := []models.Application{}
	if total == 0 || page.Offset >= total {
		return apps, total, nil
	}

	listSQL, listArgs := q.list(filter, page)
	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		r.log.Error("application list query failed", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return apps, total, nil
}

// UpdateStatus sets the status of an application.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id)
	if err != nil {
		r.log.Error("application status update failed", zap.Int64("application_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update application %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
