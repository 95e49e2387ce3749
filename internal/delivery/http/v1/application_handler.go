package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.PATCH("/applications/:id", handler.UpdateStatus)
}

type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter"`
	ResumeURL   *string `json:"resume_url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Requires a medical profile; one application per user per job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Job posting ID"
// @Param        body  body      ApplyRequest  true  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobPostingID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid job posting id"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), currentUserID(c), jobPostingID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Only admins of the posting's organization may view applicants
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobPostingID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid job posting id"))
		return
	}

	result, err := h.applicationUC.GetJobApplications(c.Request.Context(), currentUserID(c), jobPostingID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", result)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Only admins of the posting's organization may change status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true  "Application ID"
// @Param        body  body      UpdateApplicationStatusRequest  true  "Status JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), currentUserID(c), applicationID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
