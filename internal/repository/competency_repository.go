package repository

import (
	"errors"

	"github.com/fhirlab/quizforge/internal/model"
	"gorm.io/gorm"
)

type CompetencyRepository interface {
	FindAllOrdered() ([]model.CompetencyArea, error)
	// Upsert creates the area if its slug is unknown, otherwise refreshes the
	// syllabus band and display order. Used by the startup seed.
	Upsert(area *model.CompetencyArea) error
}

type competencyRepository struct {
	db *gorm.DB
}

func NewCompetencyRepository(db *gorm.DB) CompetencyRepository {
	return &competencyRepository{db: db}
}

func (r *competencyRepository) FindAllOrdered() ([]model.CompetencyArea, error) {
	var areas []model.CompetencyArea
	err := r.db.Order("order_index ASC").Find(&areas).Error
	return areas, err
}

func (r *competencyRepository) Upsert(area *model.CompetencyArea) error {
	var existing model.CompetencyArea
	err := r.db.Where("slug = ?", area.Slug).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(area).Error
	}
	if err != nil {
		return err
	}
	existing.Name = area.Name
	existing.MinPercent = area.MinPercent
	existing.MaxPercent = area.MaxPercent
	existing.OrderIndex = area.OrderIndex
	return r.db.Save(&existing).Error
}
