package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PracticeExamService generates and grades ephemeral certification-style
// practice exams sampled across the competency quizzes. Generated exams are
// never persisted; grading re-resolves each answer's owning question by
// searching the competency quizzes.
type PracticeExamService interface {
	Generate() (*dto.PracticeExamDTO, error)
	Grade(req dto.GradeSubmissionDTO) (*dto.GradeResultDTO, error)
}

type practiceExamService struct {
	quizRepo       repository.QuizRepository
	questionRepo   repository.QuestionRepository
	competencyRepo repository.CompetencyRepository
	attemptRepo    repository.AttemptRepository
	awardRepo      repository.PointAwardRepository
}

func NewPracticeExamService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	competencyRepo repository.CompetencyRepository,
	attemptRepo repository.AttemptRepository,
	awardRepo repository.PointAwardRepository,
) PracticeExamService {
	return &practiceExamService{
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		competencyRepo: competencyRepo,
		attemptRepo:    attemptRepo,
		awardRepo:      awardRepo,
	}
}

type sampledQuestion struct {
	question model.Question
	area     string
}

// Generate samples the blueprint count from each competency area's quiz,
// shuffles the combined set and assigns a fresh display order. An area whose
// quiz is missing is skipped with a warning rather than failing generation,
// and an area whose pool is smaller than its target contributes what it has.
func (s *practiceExamService) Generate() (*dto.PracticeExamDTO, error) {
	areas, err := s.competencyRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("GenerateExam: failed to load competency areas")
		return nil, fmt.Errorf("error fetching competency areas: %w", err)
	}

	var pool []sampledQuestion
	areaCounts := make(map[string]int, len(areas))

	for _, area := range areas {
		target, ok := examBlueprint[area.Slug]
		if !ok {
			log.Warn().Str("area", area.Slug).Msg("GenerateExam: competency area has no blueprint entry, skipping")
			continue
		}

		questions, err := s.areaQuestions(area.Slug)
		if err != nil {
			log.Warn().Err(err).Str("area", area.Slug).Msg("GenerateExam: competency quiz unavailable, omitting area")
			continue
		}

		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		if target > len(questions) {
			log.Warn().Str("area", area.Slug).Int("target", target).Int("pool", len(questions)).
				Msg("GenerateExam: question pool smaller than blueprint target")
			target = len(questions)
		}

		for _, q := range questions[:target] {
			pool = append(pool, sampledQuestion{question: q, area: area.Slug})
		}
		areaCounts[area.Slug] = target
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	examQuestions := make([]dto.ExamQuestionDTO, len(pool))
	for i, sq := range pool {
		examQuestions[i] = dto.ExamQuestionDTO{
			ID:             sq.question.ID,
			QuestionText:   sq.question.QuestionText,
			Tags:           sq.question.Tags,
			OrderIndex:     i + 1,
			CompetencyArea: sq.area,
			Choices:        toChoiceDTOs(sq.question.Choices),
		}
	}

	return &dto.PracticeExamDTO{
		ExamID:           fmt.Sprintf("%s-%d", model.PracticeExamSlug, time.Now().Unix()),
		Title:            "FHIR Certification Practice Exam",
		Description:      "A freshly sampled exam spanning all five competency areas of the certification syllabus.",
		TimeLimitMinutes: ExamTimeLimitMinutes,
		PassingScore:     ExamPassingScore,
		QuestionCount:    len(examQuestions),
		AreaCounts:       areaCounts,
		Questions:        examQuestions,
	}, nil
}

// Grade scores a flat practice-exam submission. Each answer's owning question
// is resolved across the competency quizzes in area order, first match wins;
// answers whose question cannot be found anywhere are excluded from both the
// numerator and the denominator.
func (s *practiceExamService) Grade(req dto.GradeSubmissionDTO) (*dto.GradeResultDTO, error) {
	areas, err := s.competencyRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("GradeExam: failed to load competency areas")
		return nil, fmt.Errorf("error fetching competency areas: %w", err)
	}

	index := make(map[uint]sampledQuestion)
	for _, area := range areas {
		questions, err := s.areaQuestions(area.Slug)
		if err != nil {
			log.Warn().Err(err).Str("area", area.Slug).Msg("GradeExam: competency quiz unavailable, skipping area")
			continue
		}
		for _, q := range questions {
			if _, seen := index[q.ID]; !seen {
				index[q.ID] = sampledQuestion{question: q, area: area.Slug}
			}
		}
	}

	// Resubmissions of the same question collapse to one graded answer, the
	// last submission winning, matching single-quiz grading.
	selected := make(map[uint]uint, len(req.Answers))
	var submittedOrder []uint
	for _, a := range req.Answers {
		if _, seen := selected[a.QuestionID]; !seen {
			submittedOrder = append(submittedOrder, a.QuestionID)
		}
		selected[a.QuestionID] = a.ChoiceID
	}

	correctCount := 0
	gradedCount := 0
	feedback := make([]dto.QuestionFeedbackDTO, 0, len(submittedOrder))
	answers := make([]model.QuizAnswer, 0, len(submittedOrder))

	for _, questionID := range submittedOrder {
		choiceID := selected[questionID]
		owned, ok := index[questionID]
		if !ok {
			log.Warn().Uint("question_id", questionID).
				Msg("GradeExam: submitted answer references unknown question, excluding from score")
			continue
		}
		gradedCount++

		entry := gradeOneQuestion(owned.question, map[uint]uint{questionID: choiceID})
		entry.CompetencyArea = owned.area
		if entry.IsCorrect {
			correctCount++
		}
		feedback = append(feedback, entry)

		answers = append(answers, model.QuizAnswer{
			QuestionID: questionID,
			ChoiceID:   choiceID,
			IsCorrect:  entry.IsCorrect,
		})
	}

	// The denominator is the number of graded submitted answers, not the
	// nominal exam size: an incomplete submission is scored on what was
	// answered.
	score := percentScore(correctCount, gradedCount)
	passed := score >= ExamPassingScore

	recordAttempt(s.attemptRepo, s.awardRepo, req.SessionID, model.PracticeExamSlug, score, passed, req.DurationSeconds, answers)

	return &dto.GradeResultDTO{
		QuizSlug:       model.PracticeExamSlug,
		Score:          score,
		Passed:         passed,
		TotalQuestions: gradedCount,
		CorrectAnswers: correctCount,
		Feedback:       feedback,
	}, nil
}

func (s *practiceExamService) areaQuestions(slug string) ([]model.Question, error) {
	quiz, err := s.quizRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %q: %w", slug, ErrQuizNotFound)
		}
		return nil, fmt.Errorf("error fetching quiz %q: %w", slug, err)
	}
	questions, err := s.questionRepo.FindByQuizID(quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for quiz %q: %w", slug, err)
	}
	return questions, nil
}

func toChoiceDTOs(choices []model.Choice) []dto.ChoiceDTO {
	out := make([]dto.ChoiceDTO, len(choices))
	for i, c := range choices {
		out[i] = dto.ChoiceDTO{
			ID:         c.ID,
			ChoiceText: c.ChoiceText,
			OrderIndex: c.OrderIndex,
		}
	}
	return out
}
