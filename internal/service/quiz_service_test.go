package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGetAllQuizzesSummaries(t *testing.T) {
	store := newFakeStore()
	store.addQuiz("day1-quiz", 80, 5, 4)
	store.addQuiz("fhir-fundamentals", 70, 12, 4)
	svc := NewQuizService(&fakeQuizRepo{store})

	summaries, err := svc.GetAllQuizzes()
	if err != nil {
		t.Fatalf("GetAllQuizzes: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].Slug != "day1-quiz" || summaries[0].QuestionCount != 5 {
		t.Errorf("first summary: slug=%q count=%d", summaries[0].Slug, summaries[0].QuestionCount)
	}
	if summaries[1].QuestionCount != 12 || summaries[1].PassingScore != 70 {
		t.Errorf("second summary: count=%d passing=%d", summaries[1].QuestionCount, summaries[1].PassingScore)
	}
}

func TestGetQuizBySlugDetail(t *testing.T) {
	store := newFakeStore()
	quiz := store.addQuiz("day1-quiz", 80, 2, 3)
	svc := NewQuizService(&fakeQuizRepo{store})

	detail, err := svc.GetQuizBySlug("day1-quiz")
	if err != nil {
		t.Fatalf("GetQuizBySlug: %v", err)
	}
	if detail.Slug != "day1-quiz" || detail.PassingScore != 80 {
		t.Errorf("detail: slug=%q passing=%d", detail.Slug, detail.PassingScore)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(detail.Questions))
	}
	if detail.Questions[0].ID != quiz.Questions[0].ID {
		t.Errorf("question ID %d lost in mapping", quiz.Questions[0].ID)
	}
	if len(detail.Questions[0].Choices) != 3 {
		t.Errorf("got %d choices, want 3", len(detail.Questions[0].Choices))
	}
}

func TestGetQuizBySlugNeverLeaksAnswerKey(t *testing.T) {
	store := newFakeStore()
	store.addQuiz("day1-quiz", 80, 2, 3)
	svc := NewQuizService(&fakeQuizRepo{store})

	detail, err := svc.GetQuizBySlug("day1-quiz")
	if err != nil {
		t.Fatalf("GetQuizBySlug: %v", err)
	}
	payload, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "is_correct") {
		t.Error("quiz detail serialization exposes the answer key")
	}
}

func TestGetQuizBySlugNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewQuizService(&fakeQuizRepo{store})

	_, err := svc.GetQuizBySlug("absent")
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("got %v, want ErrQuizNotFound", err)
	}
}
