package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-careerpath-backend/config"
	_ "go-careerpath-backend/docs" // Important for Swagger
	"go-careerpath-backend/internal/catalog"
	v1 "go-careerpath-backend/internal/delivery/http/v1"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/internal/extractor"
	"go-careerpath-backend/internal/repository/memory"
	"go-careerpath-backend/internal/repository/postgres"
	"go-careerpath-backend/internal/scraper"
	"go-careerpath-backend/internal/usecase"
	"go-careerpath-backend/pkg/database"
	"go-careerpath-backend/pkg/logger"
	pkgredis "go-careerpath-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Career Pathfinder Backend API
// @version         1.0
// @description     Skill extraction, gap analysis and job recommendation backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting career pathfinder backend", "port", cfg.Port)

	// 3. Setup Storage
	// Without DATABASE_URL the server runs on the in-memory store, which
	// is enough for local frontend work but loses state on restart.
	var (
		userRepo  domain.UserRepository
		skillRepo domain.SkillRepository
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		userRepo = postgres.NewUserRepository(dbPool)
		skillRepo = postgres.NewSkillRepository(dbPool)
	} else {
		logger.Log.Warn("DATABASE_URL not set - using in-memory storage")
		store := memory.NewStore()
		userRepo = store.Users()
		skillRepo = store.Skills()
	}

	// 4. Setup Hiring Cache
	var cache *goredis.Client
	if cfg.RedisURL != "" {
		if err := pkgredis.Initialize(pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - hiring analysis cache disabled", "error", err)
		} else {
			cache = pkgredis.Client()
		}
	}

	// 5. Setup Catalogue + Extractor
	cat := catalog.New()
	ext := extractor.New(cat)

	// 6. Setup Job Board Sources
	scrapeTimeout := time.Duration(cfg.ScrapeTimeoutSeconds) * time.Second
	sources := []domain.PostingSource{
		scraper.NewLinkedIn(scrapeTimeout, cfg.ScrapeLinkedInPages),
		scraper.NewIndeed(scrapeTimeout, cfg.ScrapeIndeedPages),
		scraper.NewGlassdoor(scrapeTimeout, cfg.ScrapeGlassdoorPages),
		scraper.NewMonster(scrapeTimeout),
	}

	// 7. Setup UseCases
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, tokenTTL)
	resumeUC := usecase.NewResumeUsecase(ext)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	recommendationUC := usecase.NewRecommendationUsecase(skillRepo, cat)
	gapUC := usecase.NewGapUsecase(skillRepo, cat)
	hiringUC := usecase.NewHiringUsecase(sources, cache, cacheTTL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		ResumeUC:         resumeUC,
		SkillUC:          skillUC,
		RecommendationUC: recommendationUC,
		GapUC:            gapUC,
		HiringUC:         hiringUC,
		Catalog:          cat,
		Config:           cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
