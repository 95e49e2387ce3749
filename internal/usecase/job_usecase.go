package usecase

import (
	"context"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

const (
	jobDefaultLimit = 10
	jobMaxLimit     = 50
)

type jobUsecase struct {
	jobRepo domain.JobRepository
	orgRepo domain.OrganizationRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, orgRepo domain.OrganizationRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, orgRepo: orgRepo}
}

func (u *jobUsecase) CreateJobPosting(ctx context.Context, userID, organizationID int64, input domain.CreateJobPostingInput) (*domain.JobPosting, error) {
	member, err := u.orgRepo.GetMember(ctx, userID, organizationID)
	if err != nil || member == nil || member.Role != domain.OrgRoleAdmin {
		return nil, apperror.Forbidden("You are not authorized to post jobs for this organization")
	}

	if input.Title == "" || input.Description == "" || input.Requirements == "" {
		return nil, apperror.BadRequest("Title, description and requirements are required")
	}
	if input.Location == "" || input.JobType == "" || input.Specialty == "" {
		return nil, apperror.BadRequest("Location, job type and specialty are required")
	}

	job := &domain.JobPosting{
		OrganizationID: organizationID,
		Title:          input.Title,
		Description:    input.Description,
		Requirements:   input.Requirements,
		Salary:         input.Salary,
		Location:       input.Location,
		JobType:        input.JobType,
		Specialty:      input.Specialty,
		IsActive:       true,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}

	if org, err := u.orgRepo.GetByID(ctx, organizationID); err == nil {
		job.Organization = org
	}
	return job, nil
}

// GetJobPostings is the public listing: active postings only, optionally
// filtered, keyset-paginated like the feed.
func (u *jobUsecase) GetJobPostings(ctx context.Context, cursor *int64, limit int, filter domain.JobFilter) (*domain.JobPage, error) {
	if limit == 0 {
		limit = jobDefaultLimit
	} else if limit < 1 || limit > jobMaxLimit {
		return nil, apperror.BadRequest("Limit must be between 1 and 50")
	}

	jobs, err := u.jobRepo.ListActivePage(ctx, cursor, limit+1, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var nextCursor *int64
	if len(jobs) > limit {
		next := jobs[limit].ID
		nextCursor = &next
		jobs = jobs[:limit]
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	return &domain.JobPage{JobPostings: jobs, NextCursor: nextCursor}, nil
}
