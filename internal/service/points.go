package service

import (
	"time"

	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizCompletionPoints is the fixed FHIR-points value of a session's first
// completion of a quiz. Repeat completions earn nothing.
const QuizCompletionPoints = 25

// awardCompletionPoints ledgers the one-time quiz-completion award for the
// session. Like attempt recording it is best-effort: a ledger failure is
// logged and never reaches the grading response.
func awardCompletionPoints(awardRepo repository.PointAwardRepository, sessionID, quizSlug string, score int) {
	exists, err := awardRepo.Exists(sessionID, quizSlug, model.AwardQuizCompletion)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Str("quiz_slug", quizSlug).
			Msg("Failed to check points ledger, skipping award")
		return
	}
	if exists {
		return
	}

	award := model.PointAward{
		SessionID: sessionID,
		QuizSlug:  quizSlug,
		AwardType: model.AwardQuizCompletion,
		Points:    QuizCompletionPoints,
		Score:     score,
		AwardedAt: time.Now(),
	}
	if err := awardRepo.Create(&award); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Str("quiz_slug", quizSlug).
			Msg("Failed to record point award")
		return
	}
	log.Info().Str("session_id", sessionID).Str("quiz_slug", quizSlug).
		Int("points", QuizCompletionPoints).Msg("Quiz completion points awarded")
}
