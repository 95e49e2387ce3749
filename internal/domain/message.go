package domain

import (
	"context"
	"time"
)

// Message is a direct message between two connected users.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`

	Sender *PublicUser `json:"sender,omitempty"`
}

// MessagePage is one keyset page of a conversation, ordered oldest first.
type MessagePage struct {
	Messages   []Message `json:"messages"`
	NextCursor *int64    `json:"next_cursor,omitempty"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// ListBetween returns up to limit messages between the two users ordered
	// by id descending, restricted to id < cursor when cursor is non-nil.
	ListBetween(ctx context.Context, userA, userB int64, cursor *int64, limit int) ([]Message, error)
	MarkRead(ctx context.Context, ids []int64) error
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*Message, error)
	// GetMessages marks every fetched message addressed to the caller as read
	// before returning the page.
	GetMessages(ctx context.Context, userID, otherUserID int64, cursor *int64, limit int) (*MessagePage, error)
}
