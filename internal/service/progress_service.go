package service

import (
	"fmt"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// dayQuizSequence orders the sequential bootcamp quizzes. A day's quiz is
// unlocked once the previous day's quiz has ever been passed by the session;
// the first day is always unlocked.
var dayQuizSequence = []string{"day1-quiz", "day2-quiz", "day3-quiz"}

// ProgressService answers attempt-history questions per session. It derives
// unlock state from the append-only attempt log and enforces nothing itself.
type ProgressService interface {
	GetHistory(sessionID string) ([]dto.AttemptSummaryDTO, error)
	GetProgress(sessionID string) (*dto.ProgressSummaryDTO, error)
	// EverPassed reports whether the session has any passing attempt for the
	// quiz; the prerequisite check behind sequential content.
	EverPassed(sessionID, quizSlug string) (bool, error)
}

type progressService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	awardRepo   repository.PointAwardRepository
}

func NewProgressService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	awardRepo repository.PointAwardRepository,
) ProgressService {
	return &progressService{quizRepo: quizRepo, attemptRepo: attemptRepo, awardRepo: awardRepo}
}

func (s *progressService) GetHistory(sessionID string) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("GetHistory: failed to load attempts")
		return nil, fmt.Errorf("error fetching attempt history: %w", err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		dtos = append(dtos, dto.AttemptSummaryDTO{
			ID:              a.ID,
			QuizSlug:        a.QuizSlug,
			Score:           a.Score,
			Passed:          a.Passed,
			DurationSeconds: a.DurationSeconds,
			StartedAt:       a.StartedAt,
			CompletedAt:     a.CompletedAt,
		})
	}
	return dtos, nil
}

type quizStanding struct {
	attemptCount int
	bestScore    int
	passed       bool
}

func (s *progressService) GetProgress(sessionID string) (*dto.ProgressSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("GetProgress: failed to load attempts")
		return nil, fmt.Errorf("error fetching attempt history: %w", err)
	}

	standings := make(map[string]*quizStanding)
	for _, a := range attempts {
		st, ok := standings[a.QuizSlug]
		if !ok {
			st = &quizStanding{}
			standings[a.QuizSlug] = st
		}
		st.attemptCount++
		if a.Score > st.bestScore {
			st.bestScore = a.Score
		}
		if a.Passed {
			st.passed = true
		}
	}

	quizzes, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetProgress: failed to load quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	awards, err := s.awardRepo.FindBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("GetProgress: failed to load point awards")
		return nil, fmt.Errorf("error fetching point awards: %w", err)
	}
	balance := 0
	awardedQuizzes := make(map[string]bool, len(awards))
	for _, a := range awards {
		balance += a.Points
		if a.AwardType == model.AwardQuizCompletion {
			awardedQuizzes[a.QuizSlug] = true
		}
	}

	summary := &dto.ProgressSummaryDTO{SessionID: sessionID, FhirPoints: balance}
	for _, qwc := range quizzes {
		entry := dto.QuizProgressDTO{
			QuizSlug:      qwc.Quiz.Slug,
			Title:         qwc.Quiz.Title,
			Unlocked:      s.isUnlocked(qwc.Quiz.Slug, standings),
			PointsAwarded: awardedQuizzes[qwc.Quiz.Slug],
		}
		if st, ok := standings[qwc.Quiz.Slug]; ok {
			entry.AttemptCount = st.attemptCount
			entry.BestScore = st.bestScore
			entry.Passed = st.passed
		}
		summary.Quizzes = append(summary.Quizzes, entry)
	}
	return summary, nil
}

func (s *progressService) isUnlocked(slug string, standings map[string]*quizStanding) bool {
	for i, daySlug := range dayQuizSequence {
		if slug != daySlug || i == 0 {
			continue
		}
		prev, ok := standings[dayQuizSequence[i-1]]
		return ok && prev.passed
	}
	// Quizzes outside the day sequence have no prerequisite.
	return true
}

func (s *progressService) EverPassed(sessionID, quizSlug string) (bool, error) {
	attempts, err := s.attemptRepo.FindBySessionAndQuiz(sessionID, quizSlug)
	if err != nil {
		return false, fmt.Errorf("error fetching attempts for quiz %q: %w", quizSlug, err)
	}
	for _, a := range attempts {
		if a.Passed {
			return true, nil
		}
	}
	return false, nil
}
