package model

import (
	"time"

	"gorm.io/gorm"
)

// Choice carries the answer key. IsCorrect is never serialized; grading
// results expose correctness through feedback DTOs only.
type Choice struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	ChoiceText string         `json:"choice_text" gorm:"type:text;not null"`
	IsCorrect  bool           `json:"-" gorm:"not null;default:false"`
	OrderIndex int            `json:"order_index" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
