package v1

import (
	"net/http"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(protected *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: recommendationUC}

	protected.GET("/recommendations", handler.Recommend)
}

// Recommend godoc
// @Summary      Job Recommendations
// @Description  Catalogue openings ranked by the share of their skills the user covers.
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /recommendations [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	result, err := h.recommendationUC.RecommendJobs(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job recommendations", result)
}
