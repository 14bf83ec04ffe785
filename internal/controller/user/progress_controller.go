package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/service"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetHistory godoc
// @Summary Attempt history for a session
// @Description List all graded attempts recorded for the session, newest first.
// @Tags Progress
// @Produce json
// @Param session_id path string true "Session identifier"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history/{session_id} [get]
func (c *ProgressController) GetHistory(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	history, err := c.progressService.GetHistory(sessionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch attempt history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetProgress godoc
// @Summary Per-quiz progress for a session
// @Description Per-quiz pass/unlock summary derived from the session's attempts. Day quizzes unlock sequentially once the previous day has been passed.
// @Tags Progress
// @Produce json
// @Param session_id path string true "Session identifier"
// @Success 200 {object} dto.ProgressSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress/{session_id} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	progress, err := c.progressService.GetProgress(sessionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch progress"})
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetQuizPassed godoc
// @Summary Whether a session ever passed a quiz
// @Description Answers the prerequisite question behind sequential content unlocking.
// @Tags Progress
// @Produce json
// @Param session_id path string true "Session identifier"
// @Param quiz_slug path string true "Quiz slug"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress/{session_id}/{quiz_slug} [get]
func (c *ProgressController) GetQuizPassed(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	quizSlug := ctx.Param("quiz_slug")

	passed, err := c.progressService.EverPassed(sessionID, quizSlug)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to check quiz status"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"session_id": sessionID, "quiz_slug": quizSlug, "passed": passed})
}
