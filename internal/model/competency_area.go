package model

import (
	"time"

	"gorm.io/gorm"
)

// CompetencyArea is static reference data for the certification syllabus.
// The area slug is also the slug of its backing quiz.
type CompetencyArea struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Slug       string         `json:"slug" gorm:"not null;uniqueIndex"`
	Name       string         `json:"name" gorm:"not null"`
	MinPercent int            `json:"min_percent" gorm:"not null"`
	MaxPercent int            `json:"max_percent" gorm:"not null"`
	OrderIndex int            `json:"order_index" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
