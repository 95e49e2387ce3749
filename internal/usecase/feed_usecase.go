package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

const (
	feedDefaultLimit = 10
	feedMaxLimit     = 50
	maxPostLength    = 2000
	maxCommentLength = 500
)

type feedUsecase struct {
	postRepo domain.PostRepository
	userRepo domain.UserRepository
}

func NewFeedUsecase(postRepo domain.PostRepository, userRepo domain.UserRepository) domain.FeedUsecase {
	return &feedUsecase{postRepo: postRepo, userRepo: userRepo}
}

func (u *feedUsecase) CreatePost(ctx context.Context, userID int64, content string, imageURL *string) (*domain.Post, error) {
	if content == "" {
		return nil, apperror.BadRequest("Post content cannot be empty")
	}
	// Character count, not bytes
	if utf8.RuneCountInString(content) > maxPostLength {
		return nil, apperror.BadRequest("Post content is too long")
	}

	post := &domain.Post{
		AuthorID: userID,
		Content:  content,
		ImageURL: imageURL,
		Likes:    []domain.Like{},
		Comments: []domain.Comment{},
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}

	author, err := u.userRepo.GetByID(ctx, userID)
	if err == nil && author != nil {
		post.Author = author.Public()
	}
	return post, nil
}

// GetFeed returns one keyset page, newest first. The cursor is inclusive:
// the page starts at the cursor row, and NextCursor is the id of the first
// row beyond the page.
func (u *feedUsecase) GetFeed(ctx context.Context, cursor *int64, limit int) (*domain.FeedPage, error) {
	if limit == 0 {
		limit = feedDefaultLimit
	} else if limit < 1 || limit > feedMaxLimit {
		return nil, apperror.BadRequest("Limit must be between 1 and 50")
	}

	// Fetch one extra row to learn whether another page exists.
	posts, err := u.postRepo.ListPage(ctx, cursor, limit+1)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var nextCursor *int64
	if len(posts) > limit {
		next := posts[limit].ID
		nextCursor = &next
		posts = posts[:limit]
	}

	if err := u.hydrate(ctx, posts); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.FeedPage{Posts: posts, NextCursor: nextCursor}, nil
}

func (u *feedUsecase) hydrate(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	likes, err := u.postRepo.LikesByPostIDs(ctx, ids)
	if err != nil {
		return err
	}
	comments, err := u.postRepo.CommentsByPostIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range posts {
		posts[i].Likes = likes[posts[i].ID]
		if posts[i].Likes == nil {
			posts[i].Likes = []domain.Like{}
		}
		posts[i].Comments = comments[posts[i].ID]
		if posts[i].Comments == nil {
			posts[i].Comments = []domain.Comment{}
		}
	}
	return nil
}

// LikePost toggles the caller's like. Double-invocation is not an error:
// like, unlike, like again.
func (u *feedUsecase) LikePost(ctx context.Context, userID, postID int64) (bool, error) {
	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		return false, apperror.NotFound("Post not found")
	}

	existing, err := u.postRepo.GetLike(ctx, userID, postID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, apperror.Internal(err)
	}

	if existing != nil {
		if err := u.postRepo.DeleteLike(ctx, userID, postID); err != nil {
			return false, apperror.Internal(err)
		}
		return false, nil
	}

	like := &domain.Like{UserID: userID, PostID: postID}
	if err := u.postRepo.CreateLike(ctx, like); err != nil {
		return false, err
	}
	return true, nil
}

func (u *feedUsecase) AddComment(ctx context.Context, userID, postID int64, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, apperror.BadRequest("Comment cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, apperror.BadRequest("Comment is too long")
	}

	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		return nil, apperror.NotFound("Post not found")
	}

	comment := &domain.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := u.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, apperror.Internal(err)
	}

	commenter, err := u.userRepo.GetByID(ctx, userID)
	if err == nil && commenter != nil {
		comment.User = commenter.Public()
	}
	return comment, nil
}
