package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizBySlug(slug string) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all quizzes with question count from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               qwc.Quiz.ID,
			Slug:             qwc.Quiz.Slug,
			Title:            qwc.Quiz.Title,
			Description:      qwc.Quiz.Description,
			TimeLimitMinutes: qwc.Quiz.TimeLimitMinutes,
			PassingScore:     qwc.Quiz.PassingScore,
			QuestionCount:    qwc.QuestionCount,
			CreatedAt:        qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuizBySlug(slug string) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindBySlugWithQuestions(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %q: %w", slug, ErrQuizNotFound)
		}
		log.Error().Err(err).Str("slug", slug).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("error fetching quiz %q: %w", slug, err)
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizDetailDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	return &resp, nil
}
