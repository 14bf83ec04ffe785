package dto

// ExamQuestionDTO is a sampled question inside a generated practice exam,
// tagged with the competency area it was drawn from and reordered after the
// combined shuffle.
type ExamQuestionDTO struct {
	ID             uint        `json:"id"`
	QuestionText   string      `json:"question_text"`
	Tags           []string    `json:"tags,omitempty"`
	OrderIndex     int         `json:"order_index"`
	CompetencyArea string      `json:"competency_area"`
	Choices        []ChoiceDTO `json:"choices"`
}

// PracticeExamDTO is an ephemeral generated exam. It is never persisted; the
// ID is only a handle for the client session that requested it.
type PracticeExamDTO struct {
	ExamID           string            `json:"exam_id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	TimeLimitMinutes int               `json:"time_limit_minutes"`
	PassingScore     int               `json:"passing_score"`
	QuestionCount    int               `json:"question_count"`
	AreaCounts       map[string]int    `json:"area_counts"`
	Questions        []ExamQuestionDTO `json:"questions"`
}
