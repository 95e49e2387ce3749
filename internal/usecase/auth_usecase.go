package usecase

import (
	"context"
	"errors"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
	"medconnect-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

// Same message for unknown email and wrong password so the error itself does
// not distinguish the two cases.
const badCredentialsMsg = "Invalid email or password"

type authUsecase struct {
	userRepo domain.UserRepository
	jwt      *auth.JWTService
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtService *auth.JWTService, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwt:      jwtService,
		validate: validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Pre-check for a friendly Conflict; the unique index on email still
	// backstops the race and surfaces as Conflict from the repository.
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	profile := &domain.MedicalProfile{
		ProfessionType:    input.ProfessionType,
		Specialty:         input.Specialty,
		YearsOfExperience: input.YearsOfExperience,
		LicenseNumber:     input.LicenseNumber,
		CurrentPosition:   input.CurrentPosition,
		Bio:               input.Bio,
		Location:          input.Location,
	}

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	user.MedicalProfile = profile

	token, err := u.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, apperror.Unauthorized(badCredentialsMsg)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperror.Unauthorized(badCredentialsMsg)
	}

	token, err := u.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*domain.PublicUser, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		// Token subject may outlive the row
		return nil, apperror.NotFound("User not found")
	}
	return user.Public(), nil
}
