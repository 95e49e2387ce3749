package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionUC domain.ConnectionUsecase
}

func NewConnectionHandler(protected *gin.RouterGroup, connectionUC domain.ConnectionUsecase) {
	handler := &ConnectionHandler{connectionUC: connectionUC}

	connections := protected.Group("/connections")
	{
		connections.POST("", handler.SendRequest)
		connections.POST("/:id/respond", handler.Respond)
		connections.GET("", handler.List)
		connections.GET("/requests", handler.ListRequests)
	}
}

type SendConnectionRequest struct {
	ReceiverID int64 `json:"receiver_id" binding:"required"`
}

type RespondConnectionRequest struct {
	Response string `json:"response" binding:"required,oneof=accepted rejected"`
}

// SendRequest godoc
// @Summary      Send a connection request
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        body  body      SendConnectionRequest  true  "Request JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /connections [post]
// @Security     BearerAuth
func (h *ConnectionHandler) SendRequest(c *gin.Context) {
	var req SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conn, err := h.connectionUC.SendRequest(c.Request.Context(), currentUserID(c), req.ReceiverID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Connection request sent", conn)
}

// Respond godoc
// @Summary      Accept or reject a connection request
// @Description  Only the receiver of a pending request may respond
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Connection ID"
// @Param        body  body      RespondConnectionRequest  true  "Response JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /connections/{id}/respond [post]
// @Security     BearerAuth
func (h *ConnectionHandler) Respond(c *gin.Context) {
	connectionID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid connection id"))
		return
	}

	var req RespondConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	conn, err := h.connectionUC.Respond(c.Request.Context(), currentUserID(c), connectionID, req.Response)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection request "+conn.Status, conn)
}

// List godoc
// @Summary      List accepted connections
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections [get]
// @Security     BearerAuth
func (h *ConnectionHandler) List(c *gin.Context) {
	connections, err := h.connectionUC.GetConnections(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connections retrieved", connections)
}

// ListRequests godoc
// @Summary      List pending connection requests
// @Description  Incoming and outgoing pending requests for the caller
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections/requests [get]
// @Security     BearerAuth
func (h *ConnectionHandler) ListRequests(c *gin.Context) {
	requests, err := h.connectionUC.GetRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Connection requests retrieved", requests)
}
