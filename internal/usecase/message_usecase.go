package usecase

import (
	"context"
	"errors"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

const (
	messageDefaultLimit = 50
	messageMaxLimit     = 100
)

type messageUsecase struct {
	messageRepo    domain.MessageRepository
	connectionRepo domain.ConnectionRepository
	userRepo       domain.UserRepository
}

func NewMessageUsecase(messageRepo domain.MessageRepository, connectionRepo domain.ConnectionRepository, userRepo domain.UserRepository) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo:    messageRepo,
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
	}
}

func (u *messageUsecase) requireConnected(ctx context.Context, userA, userB int64, action string) error {
	_, err := u.connectionRepo.GetAcceptedBetween(ctx, userA, userB)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Forbidden(action)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *messageUsecase) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*domain.Message, error) {
	if senderID == receiverID {
		return nil, apperror.BadRequest("Cannot send message to yourself")
	}
	if content == "" {
		return nil, apperror.BadRequest("Message cannot be empty")
	}

	if err := u.requireConnected(ctx, senderID, receiverID, "You can only send messages to your connections"); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	sender, err := u.userRepo.GetByID(ctx, senderID)
	if err == nil && sender != nil {
		msg.Sender = sender.Public()
	}
	return msg, nil
}

// GetMessages fetches one page newest-first (strictly below the cursor),
// marks everything addressed to the caller as read, then reverses to
// oldest-first. The read-marking is deliberately a side effect of viewing.
func (u *messageUsecase) GetMessages(ctx context.Context, userID, otherUserID int64, cursor *int64, limit int) (*domain.MessagePage, error) {
	if limit == 0 {
		limit = messageDefaultLimit
	} else if limit < 1 || limit > messageMaxLimit {
		return nil, apperror.BadRequest("Limit must be between 1 and 100")
	}

	if err := u.requireConnected(ctx, userID, otherUserID, "You can only view messages with your connections"); err != nil {
		return nil, err
	}

	messages, err := u.messageRepo.ListBetween(ctx, userID, otherUserID, cursor, limit+1)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var unreadIDs []int64
	for i := range messages {
		if messages[i].ReceiverID == userID && !messages[i].IsRead {
			unreadIDs = append(unreadIDs, messages[i].ID)
			messages[i].IsRead = true
		}
	}
	if len(unreadIDs) > 0 {
		if err := u.messageRepo.MarkRead(ctx, unreadIDs); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	var nextCursor *int64
	if len(messages) > limit {
		next := messages[limit].ID
		nextCursor = &next
		messages = messages[:limit]
	}

	// Oldest first for display
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	return &domain.MessagePage{Messages: messages, NextCursor: nextCursor}, nil
}
