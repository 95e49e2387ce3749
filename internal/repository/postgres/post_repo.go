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

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	post.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO posts (author_id, content, image_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		post.AuthorID, post.Content, post.ImageURL, post.CreatedAt,
	).Scan(&post.ID)
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.QueryRow(ctx, `
		SELECT id, author_id, content, image_url, created_at
		FROM posts WHERE id = $1`, id,
	).Scan(&post.ID, &post.AuthorID, &post.Content, &post.ImageURL, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListPage pages the feed newest-first. The cursor row itself is part of the
// page; callers pass the extra row's id back as the next cursor.
func (r *postRepo) ListPage(ctx context.Context, cursor *int64, limit int) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.content, p.image_url, p.created_at,
		       ` + publicUserColumns("u", "mp") + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN medical_profiles mp ON mp.user_id = u.id
		WHERE ($1::bigint IS NULL OR p.id <= $1)
		ORDER BY p.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, cursor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		var author publicUserScan

		dest := []any{&post.ID, &post.AuthorID, &post.Content, &post.ImageURL, &post.CreatedAt}
		if err := rows.Scan(append(dest, author.dest()...)...); err != nil {
			return nil, err
		}

		post.Author = author.value()
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepo) GetLike(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	var like domain.Like
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, post_id, created_at
		FROM likes WHERE user_id = $1 AND post_id = $2`,
		userID, postID,
	).Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *postRepo) CreateLike(ctx context.Context, like *domain.Like) error {
	like.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO likes (user_id, post_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		like.UserID, like.PostID, like.CreatedAt,
	).Scan(&like.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// Concurrent double-like; the toggle already happened
			return apperror.Conflict("Post already liked")
		}
		return err
	}
	return nil
}

func (r *postRepo) DeleteLike(ctx context.Context, userID, postID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	return err
}

func (r *postRepo) CreateComment(ctx context.Context, comment *domain.Comment) error {
	comment.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO comments (user_id, post_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		comment.UserID, comment.PostID, comment.Content, comment.CreatedAt,
	).Scan(&comment.ID)
}

func (r *postRepo) LikesByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]domain.Like, error) {
	query := `
		SELECT l.id, l.user_id, l.post_id, l.created_at,
		       u.id, u.email, u.first_name, u.last_name
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.post_id = ANY($1)
		ORDER BY l.created_at ASC`

	rows, err := r.db.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.Like)
	for rows.Next() {
		var like domain.Like
		user := domain.PublicUser{}
		if err := rows.Scan(
			&like.ID, &like.UserID, &like.PostID, &like.CreatedAt,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
		); err != nil {
			return nil, err
		}
		like.User = &user
		result[like.PostID] = append(result[like.PostID], like)
	}
	return result, rows.Err()
}

func (r *postRepo) CommentsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error) {
	query := `
		SELECT c.id, c.user_id, c.post_id, c.content, c.created_at,
		       ` + publicUserColumns("u", "mp") + `
		FROM comments c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN medical_profiles mp ON mp.user_id = u.id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.Comment)
	for rows.Next() {
		var comment domain.Comment
		var user publicUserScan

		dest := []any{&comment.ID, &comment.UserID, &comment.PostID, &comment.Content, &comment.CreatedAt}
		if err := rows.Scan(append(dest, user.dest()...)...); err != nil {
			return nil, err
		}

		comment.User = user.value()
		result[comment.PostID] = append(result[comment.PostID], comment)
	}
	return result, rows.Err()
}
