package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing active postings needs no authentication
	public.GET("/jobs", handler.List)

	protected.POST("/organizations/:id/jobs", handler.Create)
}

type CreateJobPostingRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"`
	Salary       *string `json:"salary"`
	Location     string  `json:"location" binding:"required"`
	JobType      string  `json:"job_type" binding:"required"`
	Specialty    string  `json:"specialty" binding:"required"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Only organization admins can post jobs
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Organization ID"
// @Param        body  body      CreateJobPostingRequest  true  "Job JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /organizations/{id}/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	organizationID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid organization id"))
		return
	}

	var req CreateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJobPosting(c.Request.Context(), currentUserID(c), organizationID, domain.CreateJobPostingInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Specialty:    req.Specialty,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posting created", job)
}

// List godoc
// @Summary      List active job postings
// @Description  Newest-first page with optional specialty and location filters
// @Tags         jobs
// @Produce      json
// @Param        specialty  query     string  false  "Specialty substring filter"
// @Param        location   query     string  false  "Location substring filter"
// @Param        cursor     query     int     false  "Keyset cursor (job id)"
// @Param        limit      query     int     false  "Page size (max 50)"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
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

	filter := domain.JobFilter{
		Specialty: optionalQuery(c, "specialty"),
		Location:  optionalQuery(c, "location"),
	}

	page, err := h.jobUC.GetJobPostings(c.Request.Context(), cursor, limit, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job postings retrieved", page)
}
