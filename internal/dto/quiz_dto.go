package dto

import "time"

// ChoiceDTO is the client-facing view of a choice. It deliberately has no
// correctness field; the answer key only surfaces through grading feedback.
type ChoiceDTO struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	OrderIndex int    `json:"order_index"`
}

// QuestionDTO is used for displaying question details to users.
type QuestionDTO struct {
	ID           uint        `json:"id"`
	QuizID       uint        `json:"quiz_id"`
	QuestionText string      `json:"question_text"`
	Explanation  string      `json:"explanation,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	OrderIndex   int         `json:"order_index"`
	Choices      []ChoiceDTO `json:"choices"`
}

// QuizDetailDTO is used for displaying a full quiz to users.
type QuizDetailDTO struct {
	ID               uint          `json:"id"`
	Slug             string        `json:"slug"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	TimeLimitMinutes *int          `json:"time_limit_minutes,omitempty"`
	PassingScore     int           `json:"passing_score"`
	Questions        []QuestionDTO `json:"questions,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes available to users.
type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	PassingScore     int       `json:"passing_score"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}
