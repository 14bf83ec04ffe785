package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizAnswer is one submitted (question, choice) pair. Correctness is
// denormalized at grading time; rows are never mutated afterwards.
type QuizAnswer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	AttemptID  uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	ChoiceID   uint           `json:"choice_id"`
	IsCorrect  bool           `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
