package v1

import (
	"net/http"

	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
	catalog *catalog.Catalog
}

func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase, cat *catalog.Catalog) {
	handler := &SkillHandler{
		skillUC: skillUC,
		catalog: cat,
	}

	public.GET("/skills/catalog", handler.Catalog)

	protectedSkills := protected.Group("/skills")
	{
		protectedSkills.GET("", handler.GetSkills)
		protectedSkills.PUT("", handler.SaveSkills)
	}
}

type SaveSkillsRequest struct {
	Skills []domain.UserSkill `json:"skills" binding:"required"`
}

// Catalog godoc
// @Summary      Skill Picker Catalogue
// @Description  Selectable skills grouped IT / Non-IT plus the known role titles.
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills/catalog [get]
func (h *SkillHandler) Catalog(c *gin.Context) {
	response.Success(c, http.StatusOK, "Skill catalogue", gin.H{
		"skills": h.catalog.SelectableSkills,
		"roles":  h.catalog.RoleTitles,
	})
}

// GetSkills godoc
// @Summary      Get User Skills
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := h.skillUC.GetSkills(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User skills", skills)
}

// SaveSkills godoc
// @Summary      Replace User Skills
// @Description  Replaces the user's full skill record with the submitted list.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skills  body      SaveSkillsRequest  true  "Skill List"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /skills [put]
func (h *SkillHandler) SaveSkills(c *gin.Context) {
	var req SaveSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.skillUC.SaveSkills(c.Request.Context(), currentUserID(c), req.Skills); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills saved", nil)
}
