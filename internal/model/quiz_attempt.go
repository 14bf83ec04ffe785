package model

import (
	"time"

	"gorm.io/gorm"
)

// PracticeExamSlug is the sentinel quiz slug recorded for graded practice
// exams, which span competency quizzes and have no owning Quiz row.
const PracticeExamSlug = "practice-exam"

type QuizAttempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SessionID       string         `json:"session_id" gorm:"not null;index"`
	QuizSlug        string         `json:"quiz_slug" gorm:"not null;index"` // quiz slug or PracticeExamSlug
	Score           int            `json:"score" gorm:"not null"`
	Passed          bool           `json:"passed" gorm:"not null"`
	DurationSeconds int            `json:"duration_seconds"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	Answers         []QuizAnswer   `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
