package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/fhirlab/quizforge/config"
	"github.com/fhirlab/quizforge/database"
	_ "github.com/fhirlab/quizforge/docs" // Swagger docs - auto-generated
	adminctrl "github.com/fhirlab/quizforge/internal/controller/admin"
	userctrl "github.com/fhirlab/quizforge/internal/controller/user"
	"github.com/fhirlab/quizforge/internal/logger"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/fhirlab/quizforge/internal/service"
)

// @title FHIR Bootcamp Exam API
// @version 1.0
// @description Quiz grading, certification-style practice exam generation and attempt tracking for the FHIR Healthcare Bootcamp.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewCompetencyRepository,
			repository.NewPointAwardRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuestionBankLoader,
			service.NewQuizService,
			service.NewGradingService,
			service.NewPracticeExamService,
			service.NewProgressService,
			service.NewAdminQuizService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewPracticeExamController,
			userctrl.NewProgressController,
			adminctrl.NewAdminQuizController,
		),

		// Invokers - ordered: schema first, reference data, banks, then routes
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedCompetencyAreas),
		fx.Invoke(LoadQuestionBanks),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	examCtrl *userctrl.PracticeExamController,
	progressCtrl *userctrl.ProgressController,
	adminQuizCtrl *adminctrl.AdminQuizController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/quizzes", quizCtrl.GetAllQuizzes)
		userAPIGroup.GET("/quizzes/:slug", quizCtrl.GetQuizBySlug)
		// The slug "practice-exam" grades a generated exam spanning all
		// competency areas.
		userAPIGroup.POST("/quizzes/:slug/grade", quizCtrl.GradeQuiz)

		userAPIGroup.GET("/practice-exam/generate", examCtrl.GenerateExam)

		userAPIGroup.GET("/history/:session_id", progressCtrl.GetHistory)
		userAPIGroup.GET("/progress/:session_id", progressCtrl.GetProgress)
		userAPIGroup.GET("/progress/:session_id/:quiz_slug", progressCtrl.GetQuizPassed)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("FHIR Bootcamp Exam API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.CompetencyArea{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.PointAward{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedCompetencyAreas upserts the static certification syllabus reference data.
func SeedCompetencyAreas(competencyRepo repository.CompetencyRepository) error {
	for _, area := range service.DefaultCompetencyAreas {
		a := area
		if err := competencyRepo.Upsert(&a); err != nil {
			log.Error().Err(err).Str("slug", area.Slug).Msg("Failed to seed competency area")
			return err
		}
	}
	log.Info().Int("areas", len(service.DefaultCompetencyAreas)).Msg("Competency areas seeded")
	return nil
}

// LoadQuestionBanks populates the quiz store from the bank directory. A bad
// bank file is logged and skipped inside the loader; only a missing
// directory aborts startup.
func LoadQuestionBanks(loader service.QuestionBankLoader, cfg *config.Config) error {
	return loader.LoadDir(cfg.Banks.Dir)
}
