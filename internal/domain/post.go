package domain

import (
	"context"
	"time"
)

type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Author   *PublicUser `json:"author,omitempty"`
	Likes    []Like      `json:"likes"`
	Comments []Comment   `json:"comments"`
}

// Like is unique per (user, post); creating one twice toggles it off.
type Like struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	PostID    int64       `json:"post_id"`
	CreatedAt time.Time   `json:"created_at"`
	User      *PublicUser `json:"user,omitempty"`
}

type Comment struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	PostID    int64       `json:"post_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	User      *PublicUser `json:"user,omitempty"`
}

// FeedPage is one keyset page of the feed. NextCursor is nil on the last page.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	NextCursor *int64 `json:"next_cursor,omitempty"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	// ListPage returns up to limit posts ordered by id descending. A non-nil
	// cursor starts the page at that id (inclusive, matching the feed's
	// cursor contract).
	ListPage(ctx context.Context, cursor *int64, limit int) ([]Post, error)
	GetLike(ctx context.Context, userID, postID int64) (*Like, error)
	CreateLike(ctx context.Context, like *Like) error
	DeleteLike(ctx context.Context, userID, postID int64) error
	CreateComment(ctx context.Context, comment *Comment) error
	// LikesByPostIDs / CommentsByPostIDs hydrate a feed page in two queries
	// instead of 2xN. Comments come back ordered ascending by creation time.
	LikesByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]Like, error)
	CommentsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]Comment, error)
}

type FeedUsecase interface {
	CreatePost(ctx context.Context, userID int64, content string, imageURL *string) (*Post, error)
	GetFeed(ctx context.Context, cursor *int64, limit int) (*FeedPage, error)
	// LikePost toggles: returns true when the call created a like, false when
	// it removed one.
	LikePost(ctx context.Context, userID, postID int64) (bool, error)
	AddComment(ctx context.Context, userID, postID int64, content string) (*Comment, error)
}
