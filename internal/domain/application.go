package domain

import (
	"context"
	"time"
)

// Application status values. Any status may overwrite any other; there is
// no forward-only guard, so accepted can revert to pending.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is one of the four known values.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is unique per (user, job posting).
type Application struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	JobPostingID int64     `json:"job_posting_id"`
	CoverLetter  *string   `json:"cover_letter,omitempty"`
	ResumeURL    *string   `json:"resume_url,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`

	Applicant  *PublicUser `json:"applicant,omitempty"`
	JobPosting *JobPosting `json:"job_posting,omitempty"`
}

// JobApplications is the employer view: the posting plus everything
// submitted against it, newest first.
type JobApplications struct {
	JobPosting   *JobPosting   `json:"job_posting"`
	Applications []Application `json:"applications"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, userID, jobPostingID int64) (bool, error)
	ListByJobPosting(ctx context.Context, jobPostingID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, userID, jobPostingID int64, coverLetter, resumeURL *string) (*Application, error)
	GetJobApplications(ctx context.Context, userID, jobPostingID int64) (*JobApplications, error)
	UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (*Application, error)
}
