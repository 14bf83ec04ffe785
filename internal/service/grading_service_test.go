package service

import (
	"errors"
	"testing"

	"github.com/fhirlab/quizforge/internal/dto"
	"github.com/fhirlab/quizforge/internal/model"
)

func newGradingFixture(passingScore, numQuestions int) (*fakeStore, GradingService, *model.Quiz) {
	store := newFakeStore()
	quiz := store.addQuiz("day1-quiz", passingScore, numQuestions, 4)
	svc := NewGradingService(&fakeQuizRepo{store}, &fakeQuestionRepo{store}, &fakeAttemptRepo{store}, &fakePointAwardRepo{store})
	return store, svc, quiz
}

func allCorrectAnswers(quiz *model.Quiz) []dto.AnswerSubmissionDTO {
	var answers []dto.AnswerSubmissionDTO
	for _, q := range quiz.Questions {
		answers = append(answers, dto.AnswerSubmissionDTO{QuestionID: q.ID, ChoiceID: correctChoiceID(q)})
	}
	return answers
}

func TestGradeQuizAllCorrect(t *testing.T) {
	_, svc, quiz := newGradingFixture(80, 5)

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{
		SessionID: "s1", Answers: allCorrectAnswers(quiz), DurationSeconds: 60,
	})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if result.Score != 100 || !result.Passed {
		t.Errorf("got score=%d passed=%v, want 100/true", result.Score, result.Passed)
	}
	if result.CorrectAnswers != 5 || result.TotalQuestions != 5 {
		t.Errorf("got correct=%d total=%d, want 5/5", result.CorrectAnswers, result.TotalQuestions)
	}
	for _, fb := range result.Feedback {
		if !fb.IsCorrect {
			t.Errorf("question %d marked incorrect in an all-correct submission", fb.QuestionID)
		}
		if fb.SelectedChoice != fb.CorrectChoice {
			t.Errorf("question %d: selected %q != correct %q", fb.QuestionID, fb.SelectedChoice, fb.CorrectChoice)
		}
	}
}

func TestGradeQuizAllWrong(t *testing.T) {
	_, svc, quiz := newGradingFixture(80, 4)

	var answers []dto.AnswerSubmissionDTO
	for _, q := range quiz.Questions {
		answers = append(answers, dto.AnswerSubmissionDTO{QuestionID: q.ID, ChoiceID: wrongChoiceID(q)})
	}

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: answers})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("got score=%d passed=%v, want 0/false", result.Score, result.Passed)
	}
}

func TestGradeQuizEmptySubmissionScoresZero(t *testing.T) {
	_, svc, _ := newGradingFixture(80, 3)

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: []dto.AnswerSubmissionDTO{}})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("got score=%d passed=%v, want 0/false", result.Score, result.Passed)
	}
	if result.TotalQuestions != 3 {
		t.Errorf("unanswered questions must still count: total=%d, want 3", result.TotalQuestions)
	}
	for _, fb := range result.Feedback {
		if fb.SelectedChoice != "No answer" {
			t.Errorf("question %d: selected %q, want the no-answer placeholder", fb.QuestionID, fb.SelectedChoice)
		}
	}
}

func TestGradeQuizUnansweredCountsIncorrect(t *testing.T) {
	_, svc, quiz := newGradingFixture(80, 4)

	// Answer only the first two questions, both correctly.
	answers := allCorrectAnswers(quiz)[:2]
	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: answers})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if result.Score != 50 {
		t.Errorf("got score=%d, want 50: denominator is the full quiz size", result.Score)
	}
	if result.CorrectAnswers != 2 || result.TotalQuestions != 4 {
		t.Errorf("got correct=%d total=%d, want 2/4", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestGradeQuizScoreRounding(t *testing.T) {
	_, svc, quiz := newGradingFixture(80, 3)

	answers := allCorrectAnswers(quiz)[:2]
	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: answers})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	// 2/3 = 66.67 rounds to 67.
	if result.Score != 67 {
		t.Errorf("got score=%d, want 67", result.Score)
	}
}

func TestGradeQuizDanglingChoiceCountsIncorrect(t *testing.T) {
	_, svc, quiz := newGradingFixture(80, 1)

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{
		Answers: []dto.AnswerSubmissionDTO{{QuestionID: quiz.Questions[0].ID, ChoiceID: 9999}},
	})
	if err != nil {
		t.Fatalf("grading must complete despite a dangling choice reference: %v", err)
	}
	if result.Score != 0 || result.CorrectAnswers != 0 {
		t.Errorf("got score=%d correct=%d, want 0/0", result.Score, result.CorrectAnswers)
	}
	if result.Feedback[0].SelectedChoice != "No answer" {
		t.Errorf("dangling choice should fall back to the placeholder, got %q", result.Feedback[0].SelectedChoice)
	}
}

func TestGradeQuizUnknownSlug(t *testing.T) {
	_, svc, _ := newGradingFixture(80, 1)

	_, err := svc.GradeQuiz("no-such-quiz", dto.GradeSubmissionDTO{})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("got %v, want ErrQuizNotFound", err)
	}
}

func TestGradeQuizPassThreshold(t *testing.T) {
	tests := []struct {
		name         string
		passingScore int
		answered     int
		total        int
		wantScore    int
		wantPassed   bool
	}{
		{"exactly at threshold", 80, 4, 5, 80, true},
		{"just below threshold", 80, 3, 5, 60, false},
		{"zero threshold always passes", 0, 0, 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			quiz := store.addQuiz("quiz", tt.passingScore, tt.total, 4)
			svc := NewGradingService(&fakeQuizRepo{store}, &fakeQuestionRepo{store}, &fakeAttemptRepo{store}, &fakePointAwardRepo{store})

			answers := allCorrectAnswers(quiz)[:tt.answered]
			result, err := svc.GradeQuiz("quiz", dto.GradeSubmissionDTO{Answers: answers})
			if err != nil {
				t.Fatalf("GradeQuiz: %v", err)
			}
			if result.Score != tt.wantScore || result.Passed != tt.wantPassed {
				t.Errorf("got score=%d passed=%v, want %d/%v", result.Score, result.Passed, tt.wantScore, tt.wantPassed)
			}
		})
	}
}

func TestGradeQuizRecordsAttempt(t *testing.T) {
	store, svc, quiz := newGradingFixture(80, 2)

	_, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{
		SessionID: "s1", Answers: allCorrectAnswers(quiz), DurationSeconds: 42,
	})
	if err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}

	if len(store.attempts) != 1 {
		t.Fatalf("got %d attempts recorded, want 1", len(store.attempts))
	}
	attempt := store.attempts[0]
	if attempt.SessionID != "s1" || attempt.QuizSlug != "day1-quiz" {
		t.Errorf("attempt recorded with session=%q slug=%q", attempt.SessionID, attempt.QuizSlug)
	}
	if attempt.Score != 100 || !attempt.Passed || attempt.DurationSeconds != 42 {
		t.Errorf("attempt score=%d passed=%v duration=%d", attempt.Score, attempt.Passed, attempt.DurationSeconds)
	}
	if len(attempt.Answers) != 2 {
		t.Errorf("got %d answers on attempt, want 2", len(attempt.Answers))
	}
	if attempt.CompletedAt == nil {
		t.Error("attempt has no completion timestamp")
	}
}

func TestGradeQuizAttemptWriteFailureIsTolerated(t *testing.T) {
	store, svc, quiz := newGradingFixture(80, 2)
	store.failAttemptCreate = true

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: allCorrectAnswers(quiz)})
	if err != nil {
		t.Fatalf("grading must succeed even when the attempt write fails: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("got score=%d, want 100", result.Score)
	}
}

func TestGradeQuizEmptyQuizScoresZero(t *testing.T) {
	store, svc, _ := newGradingFixture(80, 0)

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{SessionID: "s1"})
	if err != nil {
		t.Fatalf("a quiz with no questions must still grade: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("got score=%d passed=%v, want 0/false", result.Score, result.Passed)
	}
	if result.TotalQuestions != 0 || len(result.Feedback) != 0 {
		t.Errorf("got total=%d feedback=%d, want 0/0", result.TotalQuestions, len(result.Feedback))
	}
	if len(store.attempts) != 1 {
		t.Errorf("got %d attempts, want the degenerate grade recorded too", len(store.attempts))
	}
}

func TestGradeQuizAwardsCompletionPointsOnce(t *testing.T) {
	store, svc, quiz := newGradingFixture(80, 2)

	if _, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{SessionID: "s1", Answers: allCorrectAnswers(quiz)}); err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if len(store.awards) != 1 {
		t.Fatalf("got %d awards, want 1", len(store.awards))
	}
	award := store.awards[0]
	if award.SessionID != "s1" || award.QuizSlug != "day1-quiz" {
		t.Errorf("award ledgered for session=%q quiz=%q", award.SessionID, award.QuizSlug)
	}
	if award.Points != QuizCompletionPoints || award.AwardType != model.AwardQuizCompletion {
		t.Errorf("award points=%d type=%q", award.Points, award.AwardType)
	}
	if award.Score != 100 {
		t.Errorf("award must carry the completion score, got %d", award.Score)
	}

	// A repeat completion of the same quiz earns nothing new.
	if _, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{SessionID: "s1", Answers: allCorrectAnswers(quiz)[:1]}); err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if len(store.awards) != 1 {
		t.Errorf("got %d awards after a repeat completion, want still 1", len(store.awards))
	}

	// A different session earns its own award.
	if _, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{SessionID: "s2", Answers: allCorrectAnswers(quiz)}); err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if len(store.awards) != 2 {
		t.Errorf("got %d awards, want one per session", len(store.awards))
	}
}

func TestGradeQuizAwardWriteFailureIsTolerated(t *testing.T) {
	store, svc, quiz := newGradingFixture(80, 2)
	store.failAwardCreate = true

	result, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: allCorrectAnswers(quiz)})
	if err != nil {
		t.Fatalf("grading must succeed even when the points ledger write fails: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("got score=%d, want 100", result.Score)
	}
	if len(store.awards) != 0 {
		t.Errorf("got %d awards despite the failing ledger", len(store.awards))
	}
}

func TestGradeQuizAnonymousSessionDefault(t *testing.T) {
	store, svc, quiz := newGradingFixture(80, 1)

	if _, err := svc.GradeQuiz("day1-quiz", dto.GradeSubmissionDTO{Answers: allCorrectAnswers(quiz)}); err != nil {
		t.Fatalf("GradeQuiz: %v", err)
	}
	if store.attempts[0].SessionID != "anonymous" {
		t.Errorf("got session %q, want anonymous", store.attempts[0].SessionID)
	}
}
