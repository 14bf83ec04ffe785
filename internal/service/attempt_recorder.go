package service

import (
	"time"

	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

const anonymousSession = "anonymous"

// recordAttempt appends a graded attempt and its answers, then ledgers the
// one-time completion points for the session. Recording is best-effort: a
// failed write is logged and the grading response still reaches the caller.
func recordAttempt(
	attemptRepo repository.AttemptRepository,
	awardRepo repository.PointAwardRepository,
	sessionID, quizSlug string,
	score int,
	passed bool,
	durationSeconds int,
	answers []model.QuizAnswer,
) {
	if sessionID == "" {
		sessionID = anonymousSession
	}

	completedAt := time.Now()
	attempt := model.QuizAttempt{
		SessionID:       sessionID,
		QuizSlug:        quizSlug,
		Score:           score,
		Passed:          passed,
		DurationSeconds: durationSeconds,
		StartedAt:       completedAt.Add(-time.Duration(durationSeconds) * time.Second),
		CompletedAt:     &completedAt,
		Answers:         answers,
	}

	if err := attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Str("quiz_slug", quizSlug).
			Msg("Failed to record quiz attempt, grading result returned anyway")
	}

	awardCompletionPoints(awardRepo, sessionID, quizSlug, score)
}
