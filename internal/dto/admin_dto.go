package dto

// ChoiceCreateDTO is used within QuestionCreateDTO for admin quiz creation.
type ChoiceCreateDTO struct {
	ChoiceText string `json:"choice_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index" binding:"required,min=1"`
}

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz creation.
type QuestionCreateDTO struct {
	QuestionText string            `json:"question_text" binding:"required"`
	Explanation  string            `json:"explanation"`
	Tags         []string          `json:"tags"`
	OrderIndex   int               `json:"order_index" binding:"required,min=1"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"required,min=2,dive"`
}

// QuizCreateDTO is for admin to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Slug             string              `json:"slug" binding:"required"`
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	TimeLimitMinutes *int                `json:"time_limit_minutes"`
	PassingScore     int                 `json:"passing_score" binding:"omitempty,min=0,max=100"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
