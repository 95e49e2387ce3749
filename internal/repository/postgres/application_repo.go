package postgres

import (
	"context"
	"errors"
	"time"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	app.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (user_id, job_posting_id, cover_letter, resume_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		app.UserID, app.JobPostingID, app.CoverLetter, app.ResumeURL, app.Status, app.CreatedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	var app domain.Application
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, job_posting_id, cover_letter, resume_url, status, created_at
		FROM applications WHERE id = $1`, id,
	).Scan(&app.ID, &app.UserID, &app.JobPostingID, &app.CoverLetter, &app.ResumeURL, &app.Status, &app.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Exists(ctx context.Context, userID, jobPostingID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM applications WHERE user_id = $1 AND job_posting_id = $2)`,
		userID, jobPostingID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) ListByJobPosting(ctx context.Context, jobPostingID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.user_id, a.job_posting_id, a.cover_letter, a.resume_url, a.status, a.created_at,
		       ` + publicUserColumns("u", "mp") + `
		FROM applications a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN medical_profiles mp ON mp.user_id = u.id
		WHERE a.job_posting_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		var applicant publicUserScan
		dest := append([]any{
			&app.ID, &app.UserID, &app.JobPostingID, &app.CoverLetter,
			&app.ResumeURL, &app.Status, &app.CreatedAt,
		}, applicant.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		app.Applicant = applicant.value()
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
