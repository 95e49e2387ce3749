package usecase_test

import (
	"context"
	"strings"
	"testing"

	"medconnect-backend/internal/domain"
	"medconnect-backend/internal/usecase"
	"medconnect-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create post with author attached", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewFeedUsecase(mockPosts, mockUsers)

		mockPosts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Post).ID = 11
			}).Return(nil)
		mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, FirstName: "Ada"}, nil)

		post, err := uc.CreatePost(ctx, 1, "hello", nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), post.ID)
		assert.Equal(t, "Ada", post.Author.FirstName)
		assert.NotNil(t, post.Likes)
		assert.NotNil(t, post.Comments)
	})

	t.Run("Should reject empty content", func(t *testing.T) {
		uc := usecase.NewFeedUsecase(new(MockPostRepo), new(MockUserRepo))
		_, err := uc.CreatePost(ctx, 1, "", nil)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("Should count characters rather than bytes", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewFeedUsecase(mockPosts, mockUsers)

		mockPosts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)
		mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

		// 2000 two-byte runes, 4000 bytes: within the character limit
		_, err := uc.CreatePost(ctx, 1, strings.Repeat("é", 2000), nil)
		assert.NoError(t, err)

		_, err = uc.CreatePost(ctx, 1, strings.Repeat("é", 2001), nil)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestGetFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Should page with next cursor from the extra row", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		// limit 2, three rows back means another page exists
		rows := []domain.Post{{ID: 30}, {ID: 20}, {ID: 10}}
		mockPosts.On("ListPage", ctx, (*int64)(nil), 3).Return(rows, nil)
		mockPosts.On("LikesByPostIDs", ctx, []int64{30, 20}).Return(map[int64][]domain.Like{
			30: {{ID: 1, UserID: 2, PostID: 30}},
		}, nil)
		mockPosts.On("CommentsByPostIDs", ctx, []int64{30, 20}).Return(map[int64][]domain.Comment{}, nil)

		page, err := uc.GetFeed(ctx, nil, 2)
		assert.NoError(t, err)
		assert.Len(t, page.Posts, 2)
		assert.NotNil(t, page.NextCursor)
		assert.Equal(t, int64(10), *page.NextCursor)
		assert.Len(t, page.Posts[0].Likes, 1)
		// absent map entries come back as empty slices, not nil
		assert.NotNil(t, page.Posts[1].Likes)
		assert.NotNil(t, page.Posts[0].Comments)
	})

	t.Run("Should omit next cursor on the last page", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		mockPosts.On("ListPage", ctx, (*int64)(nil), 11).Return([]domain.Post{{ID: 5}}, nil)
		mockPosts.On("LikesByPostIDs", ctx, []int64{5}).Return(map[int64][]domain.Like{}, nil)
		mockPosts.On("CommentsByPostIDs", ctx, []int64{5}).Return(map[int64][]domain.Comment{}, nil)

		page, err := uc.GetFeed(ctx, nil, 0) // unset limit falls back to default 10
		assert.NoError(t, err)
		assert.Len(t, page.Posts, 1)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("Should reject an out-of-range limit", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		_, err := uc.GetFeed(ctx, nil, 51)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
		mockPosts.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLikePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should toggle like on, off, on again", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		mockPosts.On("GetByID", ctx, int64(10)).Return(&domain.Post{ID: 10}, nil)

		// First call: no like yet, create one
		mockPosts.On("GetLike", ctx, int64(1), int64(10)).Return(nil, domain.ErrNotFound).Once()
		mockPosts.On("CreateLike", ctx, mock.AnythingOfType("*domain.Like")).Return(nil).Once()
		liked, err := uc.LikePost(ctx, 1, 10)
		assert.NoError(t, err)
		assert.True(t, liked)

		// Second call: like exists, remove it
		mockPosts.On("GetLike", ctx, int64(1), int64(10)).Return(&domain.Like{ID: 5, UserID: 1, PostID: 10}, nil).Once()
		mockPosts.On("DeleteLike", ctx, int64(1), int64(10)).Return(nil).Once()
		liked, err = uc.LikePost(ctx, 1, 10)
		assert.NoError(t, err)
		assert.False(t, liked)

		// Third call: back to liking
		mockPosts.On("GetLike", ctx, int64(1), int64(10)).Return(nil, domain.ErrNotFound).Once()
		mockPosts.On("CreateLike", ctx, mock.AnythingOfType("*domain.Like")).Return(nil).Once()
		liked, err = uc.LikePost(ctx, 1, 10)
		assert.NoError(t, err)
		assert.True(t, liked)

		mockPosts.AssertExpectations(t)
	})

	t.Run("Should return not found for missing post", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		mockPosts.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.LikePost(ctx, 1, 99)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Should add comment to an existing post", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewFeedUsecase(mockPosts, mockUsers)

		mockPosts.On("GetByID", ctx, int64(10)).Return(&domain.Post{ID: 10}, nil)
		mockPosts.On("CreateComment", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)
		mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, FirstName: "Ada"}, nil)

		comment, err := uc.AddComment(ctx, 1, 10, "nice case")
		assert.NoError(t, err)
		assert.Equal(t, "nice case", comment.Content)
		assert.Equal(t, "Ada", comment.User.FirstName)
	})

	t.Run("Should return not found for missing post", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewFeedUsecase(mockPosts, new(MockUserRepo))

		mockPosts.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.AddComment(ctx, 1, 99, "hello")
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
	})
}
