package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	Explanation  string         `json:"explanation,omitempty" gorm:"type:text"`
	Tags         []string       `json:"tags,omitempty" gorm:"serializer:json"`
	OrderIndex   int            `json:"order_index" gorm:"not null"`
	Choices      []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
