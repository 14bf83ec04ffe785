package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService         service.QuizService
	gradingService      service.GradingService
	practiceExamService service.PracticeExamService
}

func NewQuizController(
	quizService service.QuizService,
	gradingService service.GradingService,
	practiceExamService service.PracticeExamService,
) *QuizController {
	return &QuizController{
		quizService:         quizService,
		gradingService:      gradingService,
		practiceExamService: practiceExamService,
	}
}

// GetAllQuizzes godoc
// @Summary List all available quizzes
// @Description Get all quizzes with their question counts. Choices are never included here.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizBySlug godoc
// @Summary Get a quiz with its questions
// @Description Get a quiz by slug with ordered questions and choices. The answer key is stripped from every choice.
// @Tags Quizzes
// @Produce json
// @Param slug path string true "Quiz slug"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{slug} [get]
func (c *QuizController) GetQuizBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	quiz, err := c.quizService.GetQuizBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found: " + slug})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GradeQuiz godoc
// @Summary Grade a quiz submission
// @Description Grade submitted answers for the quiz identified by slug. The slug "practice-exam" grades a generated practice exam across all competency areas.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param slug path string true "Quiz slug or practice-exam"
// @Param submission body dto.GradeSubmissionDTO true "Submitted answers"
// @Success 200 {object} dto.GradeResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed submission"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{slug}/grade [post]
func (c *QuizController) GradeQuiz(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var req dto.GradeSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("GradeQuiz: malformed submission")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission payload: " + err.Error()})
		return
	}

	var (
		result *dto.GradeResultDTO
		err    error
	)
	if slug == model.PracticeExamSlug {
		result, err = c.practiceExamService.Grade(req)
	} else {
		result, err = c.gradingService.GradeQuiz(slug, req)
	}
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found: " + slug})
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("GradeQuiz: grading failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to grade submission"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
