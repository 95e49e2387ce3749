package postgres

import (
	"context"
	"time"

	"medconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	msg.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content, is_read, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id`,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt,
	).Scan(&msg.ID)
}

// ListBetween fetches one conversation page newest-first. Unlike the feed,
// the cursor is exclusive: only rows strictly below it qualify.
func (r *messageRepo) ListBetween(ctx context.Context, userA, userB int64, cursor *int64, limit int) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
		       ` + publicUserColumns("u", "mp") + `
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		LEFT JOIN medical_profiles mp ON mp.user_id = u.id
		WHERE ((m.sender_id = $1 AND m.receiver_id = $2)
		    OR (m.sender_id = $2 AND m.receiver_id = $1))
		  AND ($3::bigint IS NULL OR m.id < $3)
		ORDER BY m.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, userA, userB, cursor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var sender publicUserScan

		dest := []any{&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.IsRead, &msg.CreatedAt}
		if err := rows.Scan(append(dest, sender.dest()...)...); err != nil {
			return nil, err
		}

		msg.Sender = sender.value()
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *messageRepo) MarkRead(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = ANY($1)`, ids)
	return err
}
