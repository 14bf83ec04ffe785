package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

type PracticeExamController struct {
	practiceExamService service.PracticeExamService
}

func NewPracticeExamController(practiceExamService service.PracticeExamService) *PracticeExamController {
	return &PracticeExamController{practiceExamService: practiceExamService}
}

// GenerateExam godoc
// @Summary Generate a practice exam
// @Description Sample a fresh certification-style exam across all five competency areas. Every call returns a different sample and ordering.
// @Tags Practice Exam
// @Produce json
// @Success 200 {object} dto.PracticeExamDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practice-exam/generate [get]
func (c *PracticeExamController) GenerateExam(ctx *gin.Context) {
	exam, err := c.practiceExamService.Generate()
	if err != nil {
		log.Error().Err(err).Msg("GenerateExam: generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate practice exam"})
		return
	}
	ctx.JSON(http.StatusOK, exam)
}
