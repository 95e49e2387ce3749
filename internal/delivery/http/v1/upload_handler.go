package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase) {
	handler := &UploadHandler{uploadUC: uploadUC}

	protected.GET("/uploads/resume-url", handler.ResumeURL)
}

// ResumeURL godoc
// @Summary      Get a presigned resume upload URL
// @Description  Returns a short-lived URL the client PUTs the resume file to
// @Tags         uploads
// @Produce      json
// @Param        file_name     query     string  true  "Resume file name"
// @Param        content_type  query     string  true  "Resume MIME type"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Router       /uploads/resume-url [get]
// @Security     BearerAuth
func (h *UploadHandler) ResumeURL(c *gin.Context) {
	fileName := c.Query("file_name")
	contentType := c.Query("content_type")
	if fileName == "" || contentType == "" {
		c.Error(apperror.BadRequest("file_name and content_type are required"))
		return
	}

	upload, err := h.uploadUC.PresignResumeUpload(c.Request.Context(), currentUserID(c), fileName, contentType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Upload URL generated", upload)
}
