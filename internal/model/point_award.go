package model

import (
	"time"

	"gorm.io/gorm"
)

// AwardQuizCompletion is the award type ledgered the first time a session
// completes a quiz.
const AwardQuizCompletion = "quiz_completion"

// PointAward is one row of the append-only FHIR-points ledger. The composite
// unique index makes each (session, quiz, type) award a one-time event.
type PointAward struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `json:"session_id" gorm:"not null;uniqueIndex:idx_point_award_once"`
	QuizSlug  string         `json:"quiz_slug" gorm:"not null;uniqueIndex:idx_point_award_once"`
	AwardType string         `json:"award_type" gorm:"not null;uniqueIndex:idx_point_award_once"`
	Points    int            `json:"points" gorm:"not null"`
	Score     int            `json:"score"` // score of the completion that earned the award
	AwardedAt time.Time      `json:"awarded_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
