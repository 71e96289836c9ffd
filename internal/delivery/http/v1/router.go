package v1

import (
	"net/http"

	"go-careerpath-backend/config"
	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/delivery/http/middleware"
	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	ResumeUC         domain.ResumeUsecase
	SkillUC          domain.SkillUsecase
	RecommendationUC domain.RecommendationUsecase
	GapUC            domain.GapUsecase
	HiringUC         domain.HiringUsecase
	Catalog          *catalog.Catalog
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewSkillHandler(v1, protected, deps.SkillUC, deps.Catalog)
		NewGapHandler(v1, protected, deps.GapUC)
		NewResumeHandler(protected, deps.ResumeUC, deps.Config.MaxUploadSizeMB)
		NewRecommendationHandler(protected, deps.RecommendationUC)
		NewHiringHandler(protected, deps.HiringUC, deps.Config.DefaultKeywords, deps.Config.DefaultLocation)
	}

	return r
}
