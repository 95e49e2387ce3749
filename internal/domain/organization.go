package domain

import (
	"context"
	"time"
)

// Organization member roles
const (
	OrgRoleAdmin  = "admin"
	OrgRoleMember = "member"
)

type Organization struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrganizationMember is unique per (user, organization).
type OrganizationMember struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	OrganizationID int64     `json:"organization_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Membership is a member row with its organization and that organization's
// active postings, as returned by getUserOrganizations.
type Membership struct {
	OrganizationMember
	Organization *Organization `json:"organization"`
	JobPostings  []JobPosting  `json:"job_postings"`
}

type CreateOrganizationInput struct {
	Name        string
	Type        string
	Description *string
	Location    *string
	Website     *string
}

type OrganizationRepository interface {
	// CreateWithAdmin inserts the organization and an admin membership for
	// the creator in a single transaction. The one multi-row atomic unit in
	// the system.
	CreateWithAdmin(ctx context.Context, org *Organization, creatorID int64) error
	GetByID(ctx context.Context, id int64) (*Organization, error)
	GetByName(ctx context.Context, name string) (*Organization, error)
	GetMember(ctx context.Context, userID, organizationID int64) (*OrganizationMember, error)
	// ListMemberships returns the user's memberships newest first, each with
	// its organization and that organization's active job postings.
	ListMemberships(ctx context.Context, userID int64) ([]Membership, error)
}

type OrganizationUsecase interface {
	CreateOrganization(ctx context.Context, userID int64, input CreateOrganizationInput) (*Organization, error)
	GetUserOrganizations(ctx context.Context, userID int64) ([]Membership, error)
}
