package dto

// AnswerSubmissionDTO is one submitted (question, choice) pair.
type AnswerSubmissionDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	ChoiceID   uint `json:"choice_id"`
}

// GradeSubmissionDTO is the request body for grading a quiz or a practice exam.
type GradeSubmissionDTO struct {
	SessionID       string                `json:"session_id"`
	Answers         []AnswerSubmissionDTO `json:"answers" binding:"required,dive"`
	DurationSeconds int                   `json:"duration_seconds"`
}

// QuestionFeedbackDTO is per-question feedback returned after grading.
type QuestionFeedbackDTO struct {
	QuestionID     uint   `json:"question_id"`
	QuestionText   string `json:"question_text"`
	SelectedChoice string `json:"selected_choice"`
	CorrectChoice  string `json:"correct_choice"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation,omitempty"`
	CompetencyArea string `json:"competency_area,omitempty"` // practice-exam grading only
}

// GradeResultDTO is the grading outcome shared by the single-quiz grader and
// the practice-exam grader.
type GradeResultDTO struct {
	QuizSlug       string                `json:"quiz_slug"`
	Score          int                   `json:"score"`
	Passed         bool                  `json:"passed"`
	TotalQuestions int                   `json:"total_questions"`
	CorrectAnswers int                   `json:"correct_answers"`
	Feedback       []QuestionFeedbackDTO `json:"feedback"`
}
