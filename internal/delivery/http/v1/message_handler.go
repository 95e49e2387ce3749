package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := protected.Group("/messages")
	{
		messages.POST("", handler.Send)
		messages.GET("/:userId", handler.Conversation)
	}
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Send godoc
// @Summary      Send a direct message
// @Description  Requires an accepted connection with the receiver
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      SendMessageRequest  true  "Message JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /messages [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.messageUC.SendMessage(c.Request.Context(), currentUserID(c), req.ReceiverID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// Conversation godoc
// @Summary      Get a conversation
// @Description  Page of messages with the given user, oldest first. Unread
// @Description  messages addressed to the caller are marked read.
// @Tags         messages
// @Produce      json
// @Param        userId  path      int  true   "Other user ID"
// @Param        cursor  query     int  false  "Keyset cursor (message id)"
// @Param        limit   query     int  false  "Page size (max 100)"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /messages/{userId} [get]
// @Security     BearerAuth
func (h *MessageHandler) Conversation(c *gin.Context) {
	otherUserID, ok := pathID(c, "userId")
	if !ok {
		c.Error(apperror.BadRequest("Invalid user id"))
		return
	}
	cursor, ok := queryCursor(c)
	if !ok {
		c.Error(apperror.BadRequest("Invalid cursor"))
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		c.Error(apperror.BadRequest("Invalid limit"))
		return
	}

	page, err := h.messageUC.GetMessages(c.Request.Context(), currentUserID(c), otherUserID, cursor, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", page)
}
