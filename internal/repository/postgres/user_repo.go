package postgres

import (
	"context"
	"errors"
	"time"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the user and their medical profile in one
// transaction so registration is all-or-nothing.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.MedicalProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	user.CreatedAt = time.Now()

	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}

	profile.UserID = user.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO medical_profiles (
			user_id, profession_type, specialty, years_of_experience,
			license_number, current_position, bio, location, profile_picture_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		profile.UserID, profile.ProfessionType, profile.Specialty, profile.YearsOfExperience,
		profile.LicenseNumber, profile.CurrentPosition, profile.Bio, profile.Location, profile.ProfilePictureURL,
	).Scan(&profile.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

const userWithProfileQuery = `
	SELECT
		u.id, u.email, u.password_hash, u.first_name, u.last_name, u.created_at,
		p.id, p.profession_type, p.specialty, p.years_of_experience,
		p.license_number, p.current_position, p.bio, p.location, p.profile_picture_url
	FROM users u
	LEFT JOIN medical_profiles p ON p.user_id = u.id`

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var profileID *int64
	var professionType, specialty *string
	var yearsOfExperience *int
	var licenseNumber, currentPosition, bio, location, pictureURL *string

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.CreatedAt,
		&profileID, &professionType, &specialty, &yearsOfExperience,
		&licenseNumber, &currentPosition, &bio, &location, &pictureURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if profileID != nil {
		user.MedicalProfile = &domain.MedicalProfile{
			ID:                *profileID,
			UserID:            user.ID,
			ProfessionType:    *professionType,
			Specialty:         *specialty,
			YearsOfExperience: *yearsOfExperience,
			LicenseNumber:     licenseNumber,
			CurrentPosition:   currentPosition,
			Bio:               bio,
			Location:          location,
			ProfilePictureURL: pictureURL,
		}
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, userWithProfileQuery+` WHERE u.id = $1`, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, userWithProfileQuery+` WHERE u.email = $1`, email))
}

func (r *userRepo) GetProfileByUserID(ctx context.Context, userID int64) (*domain.MedicalProfile, error) {
	query := `
		SELECT id, user_id, profession_type, specialty, years_of_experience,
		       license_number, current_position, bio, location, profile_picture_url
		FROM medical_profiles
		WHERE user_id = $1`

	var p domain.MedicalProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.ProfessionType, &p.Specialty, &p.YearsOfExperience,
		&p.LicenseNumber, &p.CurrentPosition, &p.Bio, &p.Location, &p.ProfilePictureURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
