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

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db  Querier
	log *zap.Logger
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool, log *zap.Logger) *JobRepo {
	return newJobRepo(db, log)
}

func newJobRepo(db Querier, log *zap.Logger) *JobRepo {
	return &JobRepo{db: db, log: log.Named("job_repo")}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx, log: r.log}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	employer := &models.EmployerSummary{}
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.SalaryRange,
		&job.JobType,
		&job.Requirements,
		&job.Status,
		&job.EmployerID,
		&job.CreatedAt,
		&job.UpdatedAt,
		&employer.Email,
		&employer.CompanyName,
		&employer.CompanyDescription,
	)
	if err != nil {
		return nil, err
	}
	employer.ID = job.EmployerID
	job.Employer = employer
	return &job, nil
}

// Create saves a new job posting and returns it with its employer summary.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, description, location, salary_range, job_type, requirements, status, employer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.SalaryRange,
		string(job.JobType),
		job.Requirements,
		string(job.Status),
		job.EmployerID,
	).Scan(&id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			r.log.Warn("job insert rejected", zap.Int64("employer_id", job.EmployerID), zap.Error(err))
			return nil, fmt.Errorf("failed to create job: %w", cerr)
		}
		r.log.Error("job insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	r.log.Debug("job created", zap.Int64("job_id", id))
	return r.GetByID(ctx, id)
}

// GetByID retrieves a specific job by its ID regardless of status.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query, args := newJobQuery().byID(id)
	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("job lookup failed", zap.Int64("job_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get job by ID %d: %w", id, err)
	}
	return job, nil
}

// List returns one page of jobs matching the filter and the total match count.
func (r *JobRepo) List(ctx context.Context, filter storage.JobFilter, page storage.Page) ([]models.Job, int, error) {
	q := newJobQuery()

	countSQL, countArgs := q.count(filter)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.log.Error("job count failed", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs := []models.Job{} // Return empty slice, not nil
	if total == 0 || page.Offset >= total {
		return jobs, total, nil
	}

	listSQL, listArgs := q.list(filter, page)
	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		r.log.Error("job list query failed", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, total, nil
}

// Update writes the required fields and any provided optional fields.
func (r *JobRepo) Update(ctx context.Context, params storage.UpdateJobParams) (*models.Job, error) {
	query := `
		UPDATE jobs SET
			title = $1,
			description = $2,
			location = $3,
			salary_range = COALESCE($4, salary_range),
			job_type = COALESCE($5, job_type),
			requirements = COALESCE($6, requirements),
			status = COALESCE($7, status),
			updated_at = NOW()
		WHERE id = $8
	`
	var jobType, status *string
	if params.JobType != nil {
		s := string(*params.JobType)
		jobType = &s
	}
	if params.Status != nil {
		s := string(*params.Status)
		status = &s
	}

	tag, err := r.db.Exec(ctx, query,
		params.Title,
		params.Description,
		params.Location,
		params.SalaryRange,
		jobType,
		params.Requirements,
		status,
		params.ID,
	)
	if err != nil {
		r.log.Error("job update failed", zap.Int64("job_id", params.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update job %d: %w", params.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, params.ID)
}

// Delete removes a job; its applications are removed by cascade.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		r.log.Error("job delete failed", zap.Int64("job_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
