package usecase_test

import (
	"context"

	"medconnect-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.MedicalProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetProfileByUserID(ctx context.Context, userID int64) (*domain.MedicalProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MedicalProfile), args.Error(1)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
func (m *MockPostRepo) ListPage(ctx context.Context, cursor *int64, limit int) ([]domain.Post, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) GetLike(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Like), args.Error(1)
}
func (m *MockPostRepo) CreateLike(ctx context.Context, like *domain.Like) error {
	return m.Called(ctx, like).Error(0)
}
func (m *MockPostRepo) DeleteLike(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}
func (m *MockPostRepo) CreateComment(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}
func (m *MockPostRepo) LikesByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]domain.Like, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Like), args.Error(1)
}
func (m *MockPostRepo) CommentsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Comment), args.Error(1)
}

type MockConnectionRepo struct {
	mock.Mock
}

func (m *MockConnectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	return m.Called(ctx, conn).Error(0)
}
func (m *MockConnectionRepo) GetByID(ctx context.Context, id int64) (*domain.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) GetBetween(ctx context.Context, userA, userB int64) (*domain.Connection, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) GetAcceptedBetween(ctx context.Context, userA, userB int64) (*domain.Connection, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockConnectionRepo) ListAccepted(ctx context.Context, userID int64) ([]domain.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) ListPendingIncoming(ctx context.Context, userID int64) ([]domain.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) ListPendingOutgoing(ctx context.Context, userID int64) ([]domain.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Connection), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockMessageRepo) ListBetween(ctx context.Context, userA, userB int64, cursor *int64, limit int) ([]domain.Message, error) {
	args := m.Called(ctx, userA, userB, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) MarkRead(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) CreateWithAdmin(ctx context.Context, org *domain.Organization, creatorID int64) error {
	return m.Called(ctx, org, creatorID).Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) GetMember(ctx context.Context, userID, organizationID int64) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, userID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}
func (m *MockOrganizationRepo) ListMemberships(ctx context.Context, userID int64) ([]domain.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Membership), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) ListActivePage(ctx context.Context, cursor *int64, limit int, filter domain.JobFilter) ([]domain.JobPosting, error) {
	args := m.Called(ctx, cursor, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, userID, jobPostingID int64) (bool, error) {
	args := m.Called(ctx, userID, jobPostingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ListByJobPosting(ctx context.Context, jobPostingID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobPostingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
