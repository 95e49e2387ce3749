package usecase

import (
	"context"
	"errors"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

type organizationUsecase struct {
	orgRepo  domain.OrganizationRepository
	userRepo domain.UserRepository
}

func NewOrganizationUsecase(orgRepo domain.OrganizationRepository, userRepo domain.UserRepository) domain.OrganizationUsecase {
	return &organizationUsecase{orgRepo: orgRepo, userRepo: userRepo}
}

func (u *organizationUsecase) CreateOrganization(ctx context.Context, userID int64, input domain.CreateOrganizationInput) (*domain.Organization, error) {
	if input.Name == "" || input.Type == "" {
		return nil, apperror.BadRequest("Organization name and type are required")
	}

	// Only medical professionals can create organizations
	profile, err := u.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil || profile == nil {
		return nil, apperror.Unauthorized("User not found or not a medical professional")
	}

	existing, err := u.orgRepo.GetByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Organization with this name already exists")
	}

	org := &domain.Organization{
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Location:    input.Location,
		Website:     input.Website,
	}

	// Org row and the creator's admin membership land atomically.
	if err := u.orgRepo.CreateWithAdmin(ctx, org, userID); err != nil {
		return nil, err
	}
	return org, nil
}

func (u *organizationUsecase) GetUserOrganizations(ctx context.Context, userID int64) ([]domain.Membership, error) {
	memberships, err := u.orgRepo.ListMemberships(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if memberships == nil {
		memberships = []domain.Membership{}
	}
	return memberships, nil
}
