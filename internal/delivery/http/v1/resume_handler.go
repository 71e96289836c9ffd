package v1

import (
	"io"
	"net/http"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC      domain.ResumeUsecase
	maxUploadSize int64
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, maxUploadSizeMB int) {
	handler := &ResumeHandler{
		resumeUC:      resumeUC,
		maxUploadSize: int64(maxUploadSizeMB) << 20,
	}

	protected.POST("/resume/analyze", handler.Analyze)
}

// Analyze godoc
// @Summary      Analyze Resume
// @Description  Upload a resume (PDF, DOCX or TXT), get back the scrubbed text and extracted skills.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        resume  formData  file  true  "Resume File"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("A 'resume' file upload is required"))
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		c.Error(apperror.BadRequest("Uploaded file exceeds the size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	result, err := h.resumeUC.AnalyzeResume(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume analyzed", result)
}
