package usecase_test

import (
	"context"
	"testing"

	"medconnect-backend/internal/domain"
	"medconnect-backend/internal/usecase"
	"medconnect-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrganization(t *testing.T) {
	ctx := context.Background()
	profile := &domain.MedicalProfile{ID: 1, UserID: 1, ProfessionType: "doctor"}

	t.Run("Should create organization with the caller as admin", func(t *testing.T) {
		mockOrgs := new(MockOrganizationRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewOrganizationUsecase(mockOrgs, mockUsers)

		mockUsers.On("GetProfileByUserID", ctx, int64(1)).Return(profile, nil)
		mockOrgs.On("GetByName", ctx, "St. Mary Clinic").Return(nil, domain.ErrNotFound)
		mockOrgs.On("CreateWithAdmin", ctx, mock.AnythingOfType("*domain.Organization"), int64(1)).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Organization).ID = 9
			}).Return(nil)

		org, err := uc.CreateOrganization(ctx, 1, domain.CreateOrganizationInput{
			Name: "St. Mary Clinic", Type: "clinic",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(9), org.ID)
		mockOrgs.AssertExpectations(t)
	})

	t.Run("Should require a medical profile", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewOrganizationUsecase(new(MockOrganizationRepo), mockUsers)

		mockUsers.On("GetProfileByUserID", ctx, int64(2)).Return(nil, domain.ErrNotFound)

		_, err := uc.CreateOrganization(ctx, 2, domain.CreateOrganizationInput{Name: "X", Type: "clinic"})
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*apperror.AppError).Code)
	})

	t.Run("Should reject duplicate name with conflict", func(t *testing.T) {
		mockOrgs := new(MockOrganizationRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewOrganizationUsecase(mockOrgs, mockUsers)

		mockUsers.On("GetProfileByUserID", ctx, int64(1)).Return(profile, nil)
		mockOrgs.On("GetByName", ctx, "Taken").Return(&domain.Organization{ID: 3, Name: "Taken"}, nil)

		_, err := uc.CreateOrganization(ctx, 1, domain.CreateOrganizationInput{Name: "Taken", Type: "clinic"})
		assert.Error(t, err)
		assert.Equal(t, 409, err.(*apperror.AppError).Code)
		mockOrgs.AssertNotCalled(t, "CreateWithAdmin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should require name and type", func(t *testing.T) {
		uc := usecase.NewOrganizationUsecase(new(MockOrganizationRepo), new(MockUserRepo))
		_, err := uc.CreateOrganization(ctx, 1, domain.CreateOrganizationInput{Name: "", Type: ""})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestGetUserOrganizations(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty slice rather than nil", func(t *testing.T) {
		mockOrgs := new(MockOrganizationRepo)
		uc := usecase.NewOrganizationUsecase(mockOrgs, new(MockUserRepo))

		mockOrgs.On("ListMemberships", ctx, int64(1)).Return(nil, nil)

		memberships, err := uc.GetUserOrganizations(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, memberships)
		assert.Empty(t, memberships)
	})
}
