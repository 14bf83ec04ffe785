package repository

import (
	"github.com/fhirlab/quizforge/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is an append-only store of graded attempts. Attempts are
// never updated or deleted after creation.
type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindBySession(sessionID string) ([]model.QuizAttempt, error)
	FindBySessionAndQuiz(sessionID, quizSlug string) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	// GORM creates the associated answers along with the attempt.
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindBySession(sessionID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("session_id = ?", sessionID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindBySessionAndQuiz(sessionID, quizSlug string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("session_id = ? AND quiz_slug = ?", sessionID, quizSlug).
		Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}
