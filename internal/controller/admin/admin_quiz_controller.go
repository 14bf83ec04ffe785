package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Admin creates a quiz with its questions and choices. Every question must have exactly one correct choice and unique display orders.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz definition"
// @Success 201 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz payload: " + err.Error()})
		return
	}

	created, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("slug", req.Slug).Msg("CreateQuiz: creation failed")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
