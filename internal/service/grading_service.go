package service

import (
	"errors"
	"fmt"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService grades a submission against a single quiz. Every question of
// the quiz counts toward the denominator; an unanswered question, or an
// answer referencing a choice the question does not have, counts as
// incorrect rather than failing the request.
type GradingService interface {
	GradeQuiz(slug string, req dto.GradeSubmissionDTO) (*dto.GradeResultDTO, error)
}

type gradingService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	awardRepo    repository.PointAwardRepository
}

func NewGradingService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	awardRepo repository.PointAwardRepository,
) GradingService {
	return &gradingService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		awardRepo:    awardRepo,
	}
}

func (s *gradingService) GradeQuiz(slug string, req dto.GradeSubmissionDTO) (*dto.GradeResultDTO, error) {
	quiz, err := s.quizRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %q: %w", slug, ErrQuizNotFound)
		}
		log.Error().Err(err).Str("slug", slug).Msg("GradeQuiz: failed to look up quiz")
		return nil, fmt.Errorf("error fetching quiz %q: %w", slug, err)
	}

	questions, err := s.questionRepo.FindByQuizID(quiz.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("GradeQuiz: failed to load questions")
		return nil, fmt.Errorf("error fetching questions for quiz %q: %w", slug, err)
	}
	if len(questions) == 0 {
		// Degenerate but gradable: a quiz with no questions scores zero
		// instead of failing the request.
		log.Warn().Str("slug", slug).Msg("GradeQuiz: quiz has no questions, scoring zero")
	}

	selected := make(map[uint]uint, len(req.Answers))
	for _, a := range req.Answers {
		selected[a.QuestionID] = a.ChoiceID
	}

	correctCount := 0
	feedback := make([]dto.QuestionFeedbackDTO, 0, len(questions))
	answers := make([]model.QuizAnswer, 0, len(req.Answers))

	for _, q := range questions {
		entry := gradeOneQuestion(q, selected)
		if entry.IsCorrect {
			correctCount++
		}
		feedback = append(feedback, entry)

		if choiceID, answered := selected[q.ID]; answered {
			answers = append(answers, model.QuizAnswer{
				QuestionID: q.ID,
				ChoiceID:   choiceID,
				IsCorrect:  entry.IsCorrect,
			})
		}
	}

	score := percentScore(correctCount, len(questions))
	passed := score >= quiz.PassingScore

	recordAttempt(s.attemptRepo, s.awardRepo, req.SessionID, quiz.Slug, score, passed, req.DurationSeconds, answers)

	return &dto.GradeResultDTO{
		QuizSlug:       quiz.Slug,
		Score:          score,
		Passed:         passed,
		TotalQuestions: len(questions),
		CorrectAnswers: correctCount,
		Feedback:       feedback,
	}, nil
}

// gradeOneQuestion compares the submitted choice for one question against its
// answer key and builds the feedback entry. Shared with practice-exam grading.
func gradeOneQuestion(q model.Question, selected map[uint]uint) dto.QuestionFeedbackDTO {
	var correctChoice *model.Choice
	for i := range q.Choices {
		if q.Choices[i].IsCorrect {
			correctChoice = &q.Choices[i]
			break
		}
	}
	if correctChoice == nil {
		// A question with no authored answer key can never be answered
		// correctly; surfaced as a diagnostic so authoring bugs do not hide.
		log.Warn().Uint("question_id", q.ID).Msg("Question has no correct choice configured")
	}

	entry := dto.QuestionFeedbackDTO{
		QuestionID:     q.ID,
		QuestionText:   q.QuestionText,
		SelectedChoice: noAnswerPlaceholder,
		Explanation:    q.Explanation,
	}
	if correctChoice != nil {
		entry.CorrectChoice = correctChoice.ChoiceText
	}

	choiceID, answered := selected[q.ID]
	if !answered {
		return entry
	}

	for _, c := range q.Choices {
		if c.ID == choiceID {
			entry.SelectedChoice = c.ChoiceText
			break
		}
	}
	if entry.SelectedChoice == noAnswerPlaceholder {
		log.Warn().Uint("question_id", q.ID).Uint("choice_id", choiceID).
			Msg("Submitted choice does not belong to question, counting as incorrect")
	}

	entry.IsCorrect = correctChoice != nil && choiceID == correctChoice.ID
	return entry
}
