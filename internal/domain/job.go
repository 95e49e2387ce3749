package domain

import (
	"context"
	"time"
)

type JobPosting struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Salary         *string   `json:"salary,omitempty"`
	Location       string    `json:"location"`
	JobType        string    `json:"job_type"`
	Specialty      string    `json:"specialty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`

	Organization *Organization `json:"organization,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}

// JobFilter narrows the public job listing. Both filters are
// case-insensitive substring matches.
type JobFilter struct {
	Specialty *string
	Location  *string
}

// JobPage is one keyset page of active postings.
type JobPage struct {
	JobPostings []JobPosting `json:"job_postings"`
	NextCursor  *int64       `json:"next_cursor,omitempty"`
}

type CreateJobPostingInput struct {
	Title        string
	Description  string
	Requirements string
	Salary       *string
	Location     string
	JobType      string
	Specialty    string
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	// ListActivePage returns up to limit active postings ordered by id
	// descending, starting at cursor when non-nil (inclusive), with the
	// organization and applications hydrated.
	ListActivePage(ctx context.Context, cursor *int64, limit int, filter JobFilter) ([]JobPosting, error)
}

type JobUsecase interface {
	CreateJobPosting(ctx context.Context, userID, organizationID int64, input CreateJobPostingInput) (*JobPosting, error)
	GetJobPostings(ctx context.Context, cursor *int64, limit int, filter JobFilter) (*JobPage, error)
}
