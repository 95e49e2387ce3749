package postgres

import (
	"context"
	"errors"
	"time"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type organizationRepo struct {
	db *pgxpool.Pool
}

func NewOrganizationRepository(db *pgxpool.Pool) domain.OrganizationRepository {
	return &organizationRepo{db: db}
}

// CreateWithAdmin inserts the organization and the creator's admin
// membership in one transaction.
func (r *organizationRepo) CreateWithAdmin(ctx context.Context, org *domain.Organization, creatorID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	org.CreatedAt = time.Now()

	err = tx.QueryRow(ctx, `
		INSERT INTO organizations (name, type, description, location, website, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		org.Name, org.Type, org.Description, org.Location, org.Website, org.CreatedAt,
	).Scan(&org.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Organization with this name already exists")
		}
		return apperror.Internal(err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO organization_members (user_id, organization_id, role, created_at)
		VALUES ($1, $2, $3, $4)`,
		creatorID, org.ID, domain.OrgRoleAdmin, time.Now(),
	)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *organizationRepo) scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var org domain.Organization
	err := row.Scan(&org.ID, &org.Name, &org.Type, &org.Description, &org.Location, &org.Website, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

const organizationColumns = `id, name, type, description, location, website, created_at`

func (r *organizationRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	return r.scanOrganization(r.db.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id))
}

func (r *organizationRepo) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	return r.scanOrganization(r.db.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE name = $1`, name))
}

func (r *organizationRepo) GetMember(ctx context.Context, userID, organizationID int64) (*domain.OrganizationMember, error) {
	var m domain.OrganizationMember
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, organization_id, role, created_at
		FROM organization_members
		WHERE user_id = $1 AND organization_id = $2`,
		userID, organizationID,
	).Scan(&m.ID, &m.UserID, &m.OrganizationID, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *organizationRepo) ListMemberships(ctx context.Context, userID int64) ([]domain.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.organization_id, m.role, m.created_at,
		       o.id, o.name, o.type, o.description, o.location, o.website, o.created_at
		FROM organization_members m
		JOIN organizations o ON o.id = m.organization_id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []domain.Membership
	var orgIDs []int64
	for rows.Next() {
		var ms domain.Membership
		var org domain.Organization
		if err := rows.Scan(
			&ms.ID, &ms.UserID, &ms.OrganizationID, &ms.Role, &ms.CreatedAt,
			&org.ID, &org.Name, &org.Type, &org.Description, &org.Location, &org.Website, &org.CreatedAt,
		); err != nil {
			return nil, err
		}
		ms.Organization = &org
		ms.JobPostings = []domain.JobPosting{}
		memberships = append(memberships, ms)
		orgIDs = append(orgIDs, org.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return memberships, nil
	}

	// Nested active postings, one query for all organizations
	jobRows, err := r.db.Query(ctx, `
		SELECT id, organization_id, title, description, requirements, salary,
		       location, job_type, specialty, is_active, created_at
		FROM job_postings
		WHERE organization_id = ANY($1) AND is_active = true
		ORDER BY created_at DESC`, orgIDs)
	if err != nil {
		return nil, err
	}
	defer jobRows.Close()

	jobsByOrg := make(map[int64][]domain.JobPosting)
	for jobRows.Next() {
		var job domain.JobPosting
		if err := jobRows.Scan(
			&job.ID, &job.OrganizationID, &job.Title, &job.Description, &job.Requirements,
			&job.Salary, &job.Location, &job.JobType, &job.Specialty, &job.IsActive, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobsByOrg[job.OrganizationID] = append(jobsByOrg[job.OrganizationID], job)
	}
	if err := jobRows.Err(); err != nil {
		return nil, err
	}

	for i := range memberships {
		if jobs, ok := jobsByOrg[memberships[i].OrganizationID]; ok {
			memberships[i].JobPostings = jobs
		}
	}
	return memberships, nil
}
