package dto

import "time"

// AttemptSummaryDTO is one row of a session's attempt history.
type AttemptSummaryDTO struct {
	ID              uint       `json:"id"`
	QuizSlug        string     `json:"quiz_slug"`
	Score           int        `json:"score"`
	Passed          bool       `json:"passed"`
	DurationSeconds int        `json:"duration_seconds"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// QuizProgressDTO summarizes a session's standing on one quiz.
type QuizProgressDTO struct {
	QuizSlug      string `json:"quiz_slug"`
	Title         string `json:"title"`
	AttemptCount  int    `json:"attempt_count"`
	BestScore     int    `json:"best_score"`
	Passed        bool   `json:"passed"`
	Unlocked      bool   `json:"unlocked"`
	PointsAwarded bool   `json:"points_awarded"`
}

// ProgressSummaryDTO is the per-session progress view used to render unlock
// state for the sequential day quizzes and the session's FHIR-points balance.
type ProgressSummaryDTO struct {
	SessionID  string            `json:"session_id"`
	FhirPoints int               `json:"fhir_points"`
	Quizzes    []QuizProgressDTO `json:"quizzes"`
}
