package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`

	// 1:1 profile, loaded alongside the user where the caller needs it
	MedicalProfile *MedicalProfile `json:"medical_profile,omitempty"`
}

// MedicalProfile is the professional profile attached to a user.
type MedicalProfile struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"user_id"`
	ProfessionType    string  `json:"profession_type"`
	Specialty         string  `json:"specialty"`
	YearsOfExperience int     `json:"years_of_experience"`
	LicenseNumber     *string `json:"license_number,omitempty"`
	CurrentPosition   *string `json:"current_position,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	Location          *string `json:"location,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// PublicUser is the user view returned by auth endpoints and embedded in
// feed/connection/message payloads. Never carries the password hash.
type PublicUser struct {
	ID             int64           `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	MedicalProfile *MedicalProfile `json:"medical_profile,omitempty"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		MedicalProfile: u.MedicalProfile,
	}
}

// RegisterInput carries everything needed to create a user and their
// medical profile in one write.
type RegisterInput struct {
	Email             string `validate:"required,email"`
	Password          string `validate:"required,min=6"`
	FirstName         string `validate:"required"`
	LastName          string `validate:"required"`
	ProfessionType    string `validate:"required"`
	Specialty         string `validate:"required"`
	YearsOfExperience int    `validate:"min=0"`
	LicenseNumber     *string
	CurrentPosition   *string
	Bio               *string
	Location          *string
}

// AuthResult is the token + user view returned by register and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  *PublicUser `json:"user"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user row and its medical profile in a
	// single transaction and fills in both generated IDs.
	CreateWithProfile(ctx context.Context, user *User, profile *MedicalProfile) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*MedicalProfile, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID int64) (*PublicUser, error)
}
