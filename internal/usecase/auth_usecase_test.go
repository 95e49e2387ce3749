package usecase_test

import (
	"context"
	"testing"
	"time"

	"medconnect-backend/internal/domain"
	"medconnect-backend/internal/usecase"
	"medconnect-backend/pkg/apperror"
	"medconnect-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "medconnect-test",
	})
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:             "doc@example.com",
		Password:          "secret123",
		FirstName:         "Ada",
		LastName:          "Nurse",
		ProfessionType:    "doctor",
		Specialty:         "cardiology",
		YearsOfExperience: 5,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create user and return token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByEmail", ctx, "doc@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("CreateWithProfile", ctx, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.MedicalProfile")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)

		result, err := uc.Register(ctx, validRegisterInput())
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(7), result.User.ID)
		assert.NotNil(t, result.User.MedicalProfile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate email with conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByEmail", ctx, "doc@example.com").Return(&domain.User{ID: 1, Email: "doc@example.com"}, nil)

		_, err := uc.Register(ctx, validRegisterInput())
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should reject invalid input", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		input := validRegisterInput()
		input.Password = "short" // below minimum length

		_, err := uc.Register(ctx, input)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := auth.HashPassword("secret123")

	t.Run("Should return token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByEmail", ctx, "doc@example.com").Return(&domain.User{
			ID: 3, Email: "doc@example.com", PasswordHash: hash,
		}, nil)

		result, err := uc.Login(ctx, "doc@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(3), result.User.ID)
	})

	t.Run("Should use the same message for unknown email and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", ctx, "doc@example.com").Return(&domain.User{
			ID: 3, Email: "doc@example.com", PasswordHash: hash,
		}, nil)

		_, errUnknown := uc.Login(ctx, "nobody@example.com", "secret123")
		_, errWrongPw := uc.Login(ctx, "doc@example.com", "wrongpass")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return public view without password hash", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{
			ID: 3, Email: "doc@example.com", PasswordHash: "hash", FirstName: "Ada",
		}, nil)

		user, err := uc.GetCurrentUser(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Ada", user.FirstName)
	})

	t.Run("Should return not found when the row is gone", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testJWTService(), validator.New())

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetCurrentUser(ctx, 99)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})
}
