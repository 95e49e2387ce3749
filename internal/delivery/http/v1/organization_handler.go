package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	orgUC domain.OrganizationUsecase
}

func NewOrganizationHandler(protected *gin.RouterGroup, orgUC domain.OrganizationUsecase) {
	handler := &OrganizationHandler{orgUC: orgUC}

	organizations := protected.Group("/organizations")
	{
		organizations.POST("", handler.Create)
		organizations.GET("/mine", handler.Mine)
	}
}

type CreateOrganizationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
}

// Create godoc
// @Summary      Create an organization
// @Description  Creates the organization and makes the caller its admin
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      CreateOrganizationRequest  true  "Organization JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /organizations [post]
// @Security     BearerAuth
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	org, err := h.orgUC.CreateOrganization(c.Request.Context(), currentUserID(c), domain.CreateOrganizationInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Organization created", org)
}

// Mine godoc
// @Summary      List my organizations
// @Description  Memberships of the caller with each organization's active postings
// @Tags         organizations
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /organizations/mine [get]
// @Security     BearerAuth
func (h *OrganizationHandler) Mine(c *gin.Context) {
	memberships, err := h.orgUC.GetUserOrganizations(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organizations retrieved", memberships)
}
