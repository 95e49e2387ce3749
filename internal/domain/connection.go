package domain

import (
	"context"
	"time"
)

// Connection status values. pending is the only state that accepts a
// transition; accepted and rejected are terminal.
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"
)

// Connection is a directed request from requester to receiver. Once accepted
// it is treated as an undirected "connected" relationship. At most one row
// exists between any two users, in either direction, including rejected
// rows, so a rejected pair can never re-request.
type Connection struct {
	ID          int64     `json:"id"`
	RequesterID int64     `json:"requester_id"`
	ReceiverID  int64     `json:"receiver_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	Requester *PublicUser `json:"requester,omitempty"`
	Receiver  *PublicUser `json:"receiver,omitempty"`
}

// CanTransition reports whether the connection may move to the given status.
func (c *Connection) CanTransition(to string) bool {
	if c.Status != ConnectionStatusPending {
		return false
	}
	return to == ConnectionStatusAccepted || to == ConnectionStatusRejected
}

// ConnectionView normalizes an accepted connection to expose the "other"
// party regardless of which side sent the original request.
type ConnectionView struct {
	ID            int64       `json:"id"`
	ConnectedUser *PublicUser `json:"connected_user"`
	ConnectedAt   time.Time   `json:"connected_at"`
}

// ConnectionRequests splits the caller's pending requests by direction.
type ConnectionRequests struct {
	Incoming []Connection `json:"incoming"`
	Outgoing []Connection `json:"outgoing"`
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *Connection) error
	GetByID(ctx context.Context, id int64) (*Connection, error)
	// GetBetween returns the row between the two users in either direction,
	// whatever its status, or ErrNotFound.
	GetBetween(ctx context.Context, userA, userB int64) (*Connection, error)
	// GetAcceptedBetween is GetBetween restricted to status=accepted.
	GetAcceptedBetween(ctx context.Context, userA, userB int64) (*Connection, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// ListAccepted returns accepted connections touching the user, newest
	// first, with both parties hydrated.
	ListAccepted(ctx context.Context, userID int64) ([]Connection, error)
	ListPendingIncoming(ctx context.Context, userID int64) ([]Connection, error)
	ListPendingOutgoing(ctx context.Context, userID int64) ([]Connection, error)
}

type ConnectionUsecase interface {
	SendRequest(ctx context.Context, requesterID, receiverID int64) (*Connection, error)
	Respond(ctx context.Context, userID, connectionID int64, response string) (*Connection, error)
	GetConnections(ctx context.Context, userID int64) ([]ConnectionView, error)
	GetRequests(ctx context.Context, userID int64) (*ConnectionRequests, error)
}
