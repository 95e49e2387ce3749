package usecase

import (
	"context"
	"errors"

	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"
)

type connectionUsecase struct {
	connectionRepo domain.ConnectionRepository
	userRepo       domain.UserRepository
}

func NewConnectionUsecase(connectionRepo domain.ConnectionRepository, userRepo domain.UserRepository) domain.ConnectionUsecase {
	return &connectionUsecase{connectionRepo: connectionRepo, userRepo: userRepo}
}

func (u *connectionUsecase) SendRequest(ctx context.Context, requesterID, receiverID int64) (*domain.Connection, error) {
	if requesterID == receiverID {
		return nil, apperror.BadRequest("Cannot send connection request to yourself")
	}

	receiver, err := u.userRepo.GetByID(ctx, receiverID)
	if err != nil || receiver == nil {
		return nil, apperror.NotFound("User not found")
	}

	// Any row between the pair blocks a new request, rejected included.
	// A rejected pair stays blocked forever.
	existing, err := u.connectionRepo.GetBetween(ctx, requesterID, receiverID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("Connection request already exists or users are already connected")
	}

	conn := &domain.Connection{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      domain.ConnectionStatusPending,
	}
	if err := u.connectionRepo.Create(ctx, conn); err != nil {
		return nil, apperror.Internal(err)
	}
	conn.Receiver = receiver.Public()
	return conn, nil
}

func (u *connectionUsecase) Respond(ctx context.Context, userID, connectionID int64, response string) (*domain.Connection, error) {
	if response != domain.ConnectionStatusAccepted && response != domain.ConnectionStatusRejected {
		return nil, apperror.BadRequest("Response must be accepted or rejected")
	}

	conn, err := u.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, apperror.NotFound("Connection request not found")
	}

	if conn.ReceiverID != userID {
		return nil, apperror.Forbidden("You can only respond to connection requests sent to you")
	}

	if !conn.CanTransition(response) {
		return nil, apperror.BadRequest("This connection request has already been responded to")
	}

	if err := u.connectionRepo.UpdateStatus(ctx, connectionID, response); err != nil {
		return nil, apperror.Internal(err)
	}
	conn.Status = response
	return conn, nil
}

func (u *connectionUsecase) GetConnections(ctx context.Context, userID int64) ([]domain.ConnectionView, error) {
	connections, err := u.connectionRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	views := make([]domain.ConnectionView, 0, len(connections))
	for _, conn := range connections {
		other := conn.Receiver
		if conn.ReceiverID == userID {
			other = conn.Requester
		}
		views = append(views, domain.ConnectionView{
			ID:            conn.ID,
			ConnectedUser: other,
			ConnectedAt:   conn.CreatedAt,
		})
	}
	return views, nil
}

func (u *connectionUsecase) GetRequests(ctx context.Context, userID int64) (*domain.ConnectionRequests, error) {
	incoming, err := u.connectionRepo.ListPendingIncoming(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	outgoing, err := u.connectionRepo.ListPendingOutgoing(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if incoming == nil {
		incoming = []domain.Connection{}
	}
	if outgoing == nil {
		outgoing = []domain.Connection{}
	}
	return &domain.ConnectionRequests{Incoming: incoming, Outgoing: outgoing}, nil
}
