package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Slug             string         `json:"slug" gorm:"not null;uniqueIndex"` // "day1-quiz", "fhir-fundamentals"
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty"`
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	PassingScore     int            `json:"passing_score" gorm:"not null;default:80"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
