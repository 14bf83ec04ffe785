package service

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	exists, err := s.quizRepo.ExistsBySlug(req.Slug)
	if err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("CreateQuiz: failed to check slug")
		return nil, fmt.Errorf("error checking quiz slug %q: %w", req.Slug, err)
	}
	if exists {
		return nil, fmt.Errorf("slug %q: %w", req.Slug, ErrSlugTaken)
	}

	orderSeen := make(map[int]bool, len(req.Questions))
	var questions []model.Question

	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderIndex] {
			return nil, fmt.Errorf("duplicate question order_index %d", qDto.OrderIndex)
		}
		orderSeen[qDto.OrderIndex] = true

		correctCount := 0
		choiceOrderSeen := make(map[int]bool, len(qDto.Choices))
		for _, cDto := range qDto.Choices {
			if cDto.IsCorrect {
				correctCount++
			}
			if choiceOrderSeen[cDto.OrderIndex] {
				return nil, fmt.Errorf("question order %d: duplicate choice order_index %d", qDto.OrderIndex, cDto.OrderIndex)
			}
			choiceOrderSeen[cDto.OrderIndex] = true
		}
		if correctCount != 1 {
			return nil, fmt.Errorf("question order %d must have exactly one correct choice, got %d", qDto.OrderIndex, correctCount)
		}

		var questionModel model.Question
		copier.Copy(&questionModel, &qDto)
		questions = append(questions, questionModel)
	}

	quizModel := model.Quiz{
		Slug:             req.Slug,
		Title:            req.Title,
		Description:      req.Description,
		TimeLimitMinutes: req.TimeLimitMinutes,
		PassingScore:     req.PassingScore,
		Questions:        questions,
	}
	if quizModel.PassingScore == 0 {
		quizModel.PassingScore = 80
	}

	if err := s.quizRepo.Create(&quizModel); err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	createdQuiz, err := s.quizRepo.FindBySlugWithQuestions(quizModel.Slug)
	if err != nil {
		log.Error().Err(err).Str("slug", quizModel.Slug).Msg("Failed to retrieve newly created quiz for response")
		var fallbackResp dto.QuizDetailDTO
		copier.Copy(&fallbackResp, &quizModel)
		return &fallbackResp, nil
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, createdQuiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Quiz model to QuizDetailDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
