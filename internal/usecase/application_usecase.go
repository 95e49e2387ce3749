package usecase

import (
	"context"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	orgRepo         domain.OrganizationRepository
	userRepo        domain.UserRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	orgRepo domain.OrganizationRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		orgRepo:         orgRepo,
		userRepo:        userRepo,
	}
}

func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID, jobPostingID int64, coverLetter, resumeURL *string) (*domain.Application, error) {
	// 1. Applicants must be medical professionals
	profile, err := uc.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil || profile == nil {
		return nil, apperror.Unauthorized("User not found or not a medical professional")
	}

	// 2. Job must exist and still be open; an inactive posting reads as absent
	job, err := uc.jobRepo.GetByID(ctx, jobPostingID)
	if err != nil || job == nil || !job.IsActive {
		return nil, apperror.NotFound("Job posting not found or no longer active")
	}

	// 3. One application per (user, job)
	exists, err := uc.applicationRepo.Exists(ctx, userID, jobPostingID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		UserID:       userID,
		JobPostingID: jobPostingID,
		CoverLetter:  coverLetter,
		ResumeURL:    resumeURL,
		Status:       domain.ApplicationStatusPending,
	}
	// A concurrent duplicate slips past the pre-check and hits the unique
	// index; the repository reports that as Conflict too.
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	app.JobPosting = job
	return app, nil
}

func (uc *applicationUsecase) GetJobApplications(ctx context.Context, userID, jobPostingID int64) (*domain.JobApplications, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobPostingID)
	if err != nil || job == nil {
		return nil, apperror.NotFound("Job posting not found")
	}

	if err := uc.requireOrgAdmin(ctx, userID, job.OrganizationID, "You are not authorized to view applications for this job"); err != nil {
		return nil, err
	}

	applications, err := uc.applicationRepo.ListByJobPosting(ctx, jobPostingID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if applications == nil {
		applications = []domain.Application{}
	}
	return &domain.JobApplications{JobPosting: job, Applications: applications}, nil
}

// UpdateApplicationStatus overwrites the status unconditionally. Any of the
// four values may replace any other, accepted back to pending included.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Status must be pending, reviewed, accepted, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobPostingID)
	if err != nil || job == nil {
		return nil, apperror.NotFound("Job posting not found")
	}

	if err := uc.requireOrgAdmin(ctx, userID, job.OrganizationID, "You are not authorized to update this application"); err != nil {
		return nil, err
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = status
	return app, nil
}

func (uc *applicationUsecase) requireOrgAdmin(ctx context.Context, userID, organizationID int64, message string) error {
	member, err := uc.orgRepo.GetMember(ctx, userID, organizationID)
	if err != nil || member == nil || member.Role != domain.OrgRoleAdmin {
		return apperror.Forbidden(message)
	}
	return nil
}
