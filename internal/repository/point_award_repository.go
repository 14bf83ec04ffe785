package repository

import (
	"github.com/fhirlab/quizforge/internal/model"
	"gorm.io/gorm"
)

type PointAwardRepository interface {
	Create(award *model.PointAward) error
	FindBySession(sessionID string) ([]model.PointAward, error)
	Exists(sessionID, quizSlug, awardType string) (bool, error)
}

type pointAwardRepository struct {
	db *gorm.DB
}

func NewPointAwardRepository(db *gorm.DB) PointAwardRepository {
	return &pointAwardRepository{db: db}
}

func (r *pointAwardRepository) Create(award *model.PointAward) error {
	return r.db.Create(award).Error
}

func (r *pointAwardRepository) FindBySession(sessionID string) ([]model.PointAward, error) {
	var awards []model.PointAward
	err := r.db.Where("session_id = ?", sessionID).
		Order("awarded_at ASC").
		Find(&awards).Error
	return awards, err
}

func (r *pointAwardRepository) Exists(sessionID, quizSlug, awardType string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PointAward{}).
		Where("session_id = ? AND quiz_slug = ? AND award_type = ?", sessionID, quizSlug, awardType).
		Count(&count).Error
	return count > 0, err
}
