package postgres

import (
	"context"
	"errors"
	"time"

	"medconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.organization_id, j.title, j.description, j.requirements,
	j.salary, j.location, j.job_type, j.specialty, j.is_active, j.created_at`

func scanJob(row pgx.Row, job *domain.JobPosting) error {
	return row.Scan(
		&job.ID, &job.OrganizationID, &job.Title, &job.Description, &job.Requirements,
		&job.Salary, &job.Location, &job.JobType, &job.Specialty, &job.IsActive, &job.CreatedAt,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	job.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO job_postings (organization_id, title, description, requirements,
			salary, location, job_type, specialty, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		job.OrganizationID, job.Title, job.Description, job.Requirements,
		job.Salary, job.Location, job.JobType, job.Specialty, job.IsActive, job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	var job domain.JobPosting
	err := scanJob(r.db.QueryRow(ctx, `
		SELECT `+jobColumns+` FROM job_postings j WHERE j.id = $1`, id), &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) ListActivePage(ctx context.Context, cursor *int64, limit int, filter domain.JobFilter) ([]domain.JobPosting, error) {
	query := `
		SELECT ` + jobColumns + `,
		       o.id, o.name, o.type, o.description, o.location, o.website, o.created_at
		FROM job_postings j
		JOIN organizations o ON o.id = j.organization_id
		WHERE j.is_active = true
		  AND ($1::bigint IS NULL OR j.id <= $1)
		  AND ($2::text IS NULL OR j.specialty ILIKE '%' || $2 || '%')
		  AND ($3::text IS NULL OR j.location ILIKE '%' || $3 || '%')
		ORDER BY j.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, cursor, filter.Specialty, filter.Location, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	var jobIDs []int64
	for rows.Next() {
		var job domain.JobPosting
		var org domain.Organization
		if err := rows.Scan(
			&job.ID, &job.OrganizationID, &job.Title, &job.Description, &job.Requirements,
			&job.Salary, &job.Location, &job.JobType, &job.Specialty, &job.IsActive, &job.CreatedAt,
			&org.ID, &org.Name, &org.Type, &org.Description, &org.Location, &org.Website, &org.CreatedAt,
		); err != nil {
			return nil, err
		}
		job.Organization = &org
		job.Applications = []domain.Application{}
		jobs = append(jobs, job)
		jobIDs = append(jobIDs, job.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return jobs, nil
	}

	appRows, err := r.db.Query(ctx, `
		SELECT id, user_id, job_posting_id, cover_letter, resume_url, status, created_at
		FROM applications
		WHERE job_posting_id = ANY($1)
		ORDER BY created_at DESC`, jobIDs)
	if err != nil {
		return nil, err
	}
	defer appRows.Close()

	appsByJob := make(map[int64][]domain.Application)
	for appRows.Next() {
		var app domain.Application
		if err := appRows.Scan(
			&app.ID, &app.UserID, &app.JobPostingID, &app.CoverLetter,
			&app.ResumeURL, &app.Status, &app.CreatedAt,
		); err != nil {
			return nil, err
		}
		appsByJob[app.JobPostingID] = append(appsByJob[app.JobPostingID], app)
	}
	if err := appRows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		if apps, ok := appsByJob[jobs[i].ID]; ok {
			jobs[i].Applications = apps
		}
	}
	return jobs, nil
}
