package postgres

import "medconnect-backend/internal/domain"

// publicUserColumns is the column list for hydrating a PublicUser with its
// optional medical profile. Use with a table alias for users and one for
// medical_profiles, e.g. publicUserColumns("u", "mp").
func publicUserColumns(u, mp string) string {
	return u + `.id, ` + u + `.email, ` + u + `.first_name, ` + u + `.last_name,
		` + mp + `.id, ` + mp + `.profession_type, ` + mp + `.specialty, ` + mp + `.years_of_experience,
		` + mp + `.license_number, ` + mp + `.current_position, ` + mp + `.bio, ` + mp + `.location, ` + mp + `.profile_picture_url`
}

// publicUserScan collects the scan targets matching publicUserColumns.
type publicUserScan struct {
	user              domain.PublicUser
	profileID         *int64
	professionType    *string
	specialty         *string
	yearsOfExperience *int
	licenseNumber     *string
	currentPosition   *string
	bio               *string
	location          *string
	profilePictureURL *string
}

func (s *publicUserScan) dest() []any {
	return []any{
		&s.user.ID, &s.user.Email, &s.user.FirstName, &s.user.LastName,
		&s.profileID, &s.professionType, &s.specialty, &s.yearsOfExperience,
		&s.licenseNumber, &s.currentPosition, &s.bio, &s.location, &s.profilePictureURL,
	}
}

func (s *publicUserScan) value() *domain.PublicUser {
	user := s.user
	if s.profileID != nil {
		user.MedicalProfile = &domain.MedicalProfile{
			ID:                *s.profileID,
			UserID:            user.ID,
			ProfessionType:    *s.professionType,
			Specialty:         *s.specialty,
			YearsOfExperience: *s.yearsOfExperience,
			LicenseNumber:     s.licenseNumber,
			CurrentPosition:   s.currentPosition,
			Bio:               s.bio,
			Location:          s.location,
			ProfilePictureURL: s.profilePictureURL,
		}
	}
	return &user
}
