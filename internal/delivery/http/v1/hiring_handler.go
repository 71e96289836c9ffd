package v1

import (
	"net/http"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HiringHandler struct {
	hiringUC        domain.HiringUsecase
	defaultKeywords string
	defaultLocation string
}

func NewHiringHandler(protected *gin.RouterGroup, hiringUC domain.HiringUsecase, defaultKeywords, defaultLocation string) {
	handler := &HiringHandler{
		hiringUC:        hiringUC,
		defaultKeywords: defaultKeywords,
		defaultLocation: defaultLocation,
	}

	hiring := protected.Group("/hiring")
	{
		hiring.POST("/analyze", handler.Analyze)
		hiring.GET("/export", handler.Export)
	}
}

type HiringAnalyzeRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

// Analyze godoc
// @Summary      Hiring Companies Analysis
// @Description  Best-effort scrape of public job boards, aggregated per company. Omitted fields fall back to configured defaults.
// @Tags         hiring
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        search  body      HiringAnalyzeRequest  false  "Search Parameters"
// @Success      200  {object}  response.Response
// @Router       /hiring/analyze [post]
func (h *HiringHandler) Analyze(c *gin.Context) {
	var req HiringAnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}
	keywords, location := h.withDefaults(req.Keywords, req.Location)

	analysis, err := h.hiringUC.AnalyzeHiringCompanies(c.Request.Context(), keywords, location)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hiring analysis", analysis)
}

// Export godoc
// @Summary      Export Hiring Analysis
// @Description  Runs the analysis and returns it as an xlsx workbook.
// @Tags         hiring
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        keywords  query  string  false  "Search Keywords"
// @Param        location  query  string  false  "Search Location"
// @Success      200  {file}  binary
// @Router       /hiring/export [get]
func (h *HiringHandler) Export(c *gin.Context) {
	keywords, location := h.withDefaults(c.Query("keywords"), c.Query("location"))

	data, filename, err := h.hiringUC.ExportHiringCompanies(c.Request.Context(), keywords, location)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *HiringHandler) withDefaults(keywords, location string) (string, string) {
	if keywords == "" {
		keywords = h.defaultKeywords
	}
	if location == "" {
		location = h.defaultLocation
	}
	return keywords, location
}
