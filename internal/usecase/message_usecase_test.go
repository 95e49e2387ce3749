package usecase_test

import (
	"context"
	"testing"

	"medconnect-backend/internal/domain"
	"medconnect-backend/internal/usecase"
	"medconnect-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func acceptedConn(a, b int64) *domain.Connection {
	return &domain.Connection{ID: 1, RequesterID: a, ReceiverID: b, Status: domain.ConnectionStatusAccepted}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deliver between connected users", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		mockConns := new(MockConnectionRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, mockConns, mockUsers)

		mockConns.On("GetAcceptedBetween", ctx, int64(1), int64(2)).Return(acceptedConn(1, 2), nil)
		mockMsgs.On("Create", ctx, mock.AnythingOfType("*domain.Message")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Message).ID = 42
			}).Return(nil)
		mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, FirstName: "Ada"}, nil)

		msg, err := uc.SendMessage(ctx, 1, 2, "hello")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), msg.ID)
		assert.Equal(t, "Ada", msg.Sender.FirstName)
	})

	t.Run("Should forbid messaging without an accepted connection", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), mockConns, new(MockUserRepo))

		mockConns.On("GetAcceptedBetween", ctx, int64(1), int64(2)).Return(nil, domain.ErrNotFound)

		_, err := uc.SendMessage(ctx, 1, 2, "hello")
		assert.Error(t, err)
		assert.Equal(t, 403, err.(*apperror.AppError).Code)
	})

	t.Run("Should reject self messaging and empty content", func(t *testing.T) {
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), new(MockConnectionRepo), new(MockUserRepo))

		_, err := uc.SendMessage(ctx, 1, 1, "hello")
		assert.Equal(t, 400, err.(*apperror.AppError).Code)

		_, err = uc.SendMessage(ctx, 1, 2, "")
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestGetMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Should mark unread incoming as read, page, and reverse to oldest first", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, mockConns, new(MockUserRepo))

		mockConns.On("GetAcceptedBetween", ctx, int64(1), int64(2)).Return(acceptedConn(1, 2), nil)

		// Repo returns newest first; limit 2 plus one extra row
		rows := []domain.Message{
			{ID: 30, SenderID: 2, ReceiverID: 1, Content: "third", IsRead: false},
			{ID: 20, SenderID: 1, ReceiverID: 2, Content: "second", IsRead: false},
			{ID: 10, SenderID: 2, ReceiverID: 1, Content: "first", IsRead: false},
		}
		mockMsgs.On("ListBetween", ctx, int64(1), int64(2), (*int64)(nil), 3).Return(rows, nil)
		// Only messages addressed to the caller get marked
		mockMsgs.On("MarkRead", ctx, []int64{30, 10}).Return(nil)

		page, err := uc.GetMessages(ctx, 1, 2, nil, 2)
		assert.NoError(t, err)
		assert.Len(t, page.Messages, 2)
		// Oldest of the page first
		assert.Equal(t, int64(20), page.Messages[0].ID)
		assert.Equal(t, int64(30), page.Messages[1].ID)
		assert.NotNil(t, page.NextCursor)
		assert.Equal(t, int64(10), *page.NextCursor)
		assert.True(t, page.Messages[1].IsRead)
		mockMsgs.AssertExpectations(t)
	})

	t.Run("Should forbid viewing without an accepted connection", func(t *testing.T) {
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), mockConns, new(MockUserRepo))

		mockConns.On("GetAcceptedBetween", ctx, int64(1), int64(3)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetMessages(ctx, 1, 3, nil, 0)
		assert.Error(t, err)
		assert.Equal(t, 403, err.(*apperror.AppError).Code)
	})

	t.Run("Should skip the read update when nothing is unread", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		mockConns := new(MockConnectionRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, mockConns, new(MockUserRepo))

		mockConns.On("GetAcceptedBetween", ctx, int64(1), int64(2)).Return(acceptedConn(1, 2), nil)
		mockMsgs.On("ListBetween", ctx, int64(1), int64(2), (*int64)(nil), 51).Return([]domain.Message{
			{ID: 10, SenderID: 1, ReceiverID: 2, Content: "mine", IsRead: false},
		}, nil)

		page, err := uc.GetMessages(ctx, 1, 2, nil, 0)
		assert.NoError(t, err)
		assert.Len(t, page.Messages, 1)
		assert.Nil(t, page.NextCursor)
		mockMsgs.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an out-of-range limit", func(t *testing.T) {
		mockMsgs := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockMsgs, new(MockConnectionRepo), new(MockUserRepo))

		_, err := uc.GetMessages(ctx, 1, 2, nil, 101)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
		mockMsgs.AssertNotCalled(t, "ListBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
