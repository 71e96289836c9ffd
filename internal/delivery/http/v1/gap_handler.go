package v1

import (
	"net/http"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type GapHandler struct {
	gapUC domain.GapUsecase
}

func NewGapHandler(public *gin.RouterGroup, protected *gin.RouterGroup, gapUC domain.GapUsecase) {
	handler := &GapHandler{gapUC: gapUC}

	public.GET("/roles", handler.Roles)
	protected.GET("/gap", handler.Analyze)
}

// Roles godoc
// @Summary      Known Role Titles
// @Tags         gap
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /roles [get]
func (h *GapHandler) Roles(c *gin.Context) {
	response.Success(c, http.StatusOK, "Available roles", h.gapUC.AvailableRoles())
}

// Analyze godoc
// @Summary      Skill Gap Analysis
// @Description  Readiness of the user's skill record against a target role. Unknown roles fall back to the default role, flagged on the report.
// @Tags         gap
// @Produce      json
// @Security     BearerAuth
// @Param        role  query  string  false  "Target Role Title"
// @Success      200  {object}  response.Response
// @Router       /gap [get]
func (h *GapHandler) Analyze(c *gin.Context) {
	report, err := h.gapUC.AnalyzeGap(c.Request.Context(), currentUserID(c), c.Query("role"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gap analysis", report)
}
