package postgres

import (
	"context"
	"errors"
	"time"

	"medconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type connectionRepo struct {
	db *pgxpool.Pool
}

func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &connectionRepo{db: db}
}

func (r *connectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	conn.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO connections (requester_id, receiver_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		conn.RequesterID, conn.ReceiverID, conn.Status, conn.CreatedAt,
	).Scan(&conn.ID)
}

func (r *connectionRepo) GetByID(ctx context.Context, id int64) (*domain.Connection, error) {
	var conn domain.Connection
	err := r.db.QueryRow(ctx, `
		SELECT id, requester_id, receiver_id, status, created_at
		FROM connections WHERE id = $1`, id,
	).Scan(&conn.ID, &conn.RequesterID, &conn.ReceiverID, &conn.Status, &conn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepo) getBetween(ctx context.Context, userA, userB int64, statusFilter string, args ...any) (*domain.Connection, error) {
	query := `
		SELECT id, requester_id, receiver_id, status, created_at
		FROM connections
		WHERE ((requester_id = $1 AND receiver_id = $2)
		    OR (requester_id = $2 AND receiver_id = $1))` + statusFilter

	var conn domain.Connection
	err := r.db.QueryRow(ctx, query, append([]any{userA, userB}, args...)...).Scan(
		&conn.ID, &conn.RequesterID, &conn.ReceiverID, &conn.Status, &conn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// GetBetween finds the row between two users in either direction, regardless
// of status. The pair invariant is enforced through this lookup, not a
// schema constraint.
func (r *connectionRepo) GetBetween(ctx context.Context, userA, userB int64) (*domain.Connection, error) {
	return r.getBetween(ctx, userA, userB, "")
}

func (r *connectionRepo) GetAcceptedBetween(ctx context.Context, userA, userB int64) (*domain.Connection, error) {
	return r.getBetween(ctx, userA, userB, " AND status = $3", domain.ConnectionStatusAccepted)
}

func (r *connectionRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE connections SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *connectionRepo) listWithParties(ctx context.Context, where string, args ...any) ([]domain.Connection, error) {
	query := `
		SELECT c.id, c.requester_id, c.receiver_id, c.status, c.created_at,
		       ` + publicUserColumns("req", "reqp") + `,
		       ` + publicUserColumns("rec", "recp") + `
		FROM connections c
		JOIN users req ON req.id = c.requester_id
		LEFT JOIN medical_profiles reqp ON reqp.user_id = req.id
		JOIN users rec ON rec.id = c.receiver_id
		LEFT JOIN medical_profiles recp ON recp.user_id = rec.id
		WHERE ` + where + `
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []domain.Connection
	for rows.Next() {
		var conn domain.Connection
		var requester, receiver publicUserScan

		dest := []any{&conn.ID, &conn.RequesterID, &conn.ReceiverID, &conn.Status, &conn.CreatedAt}
		dest = append(dest, requester.dest()...)
		dest = append(dest, receiver.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		conn.Requester = requester.value()
		conn.Receiver = receiver.value()
		connections = append(connections, conn)
	}
	return connections, rows.Err()
}

func (r *connectionRepo) ListAccepted(ctx context.Context, userID int64) ([]domain.Connection, error) {
	return r.listWithParties(ctx,
		`(c.requester_id = $1 OR c.receiver_id = $1) AND c.status = $2`,
		userID, domain.ConnectionStatusAccepted)
}

func (r *connectionRepo) ListPendingIncoming(ctx context.Context, userID int64) ([]domain.Connection, error) {
	return r.listWithParties(ctx,
		`c.receiver_id = $1 AND c.status = $2`,
		userID, domain.ConnectionStatusPending)
}

func (r *connectionRepo) ListPendingOutgoing(ctx context.Context, userID int64) ([]domain.Connection, error) {
	return r.listWithParties(ctx,
		`c.requester_id = $1 AND c.status = $2`,
		userID, domain.ConnectionStatusPending)
}
