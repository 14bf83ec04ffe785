package service

import "github.com/fhirlab/quizforge/internal/model"

const (
	// ExamTimeLimitMinutes is the fixed time limit of a generated practice exam.
	ExamTimeLimitMinutes = 120
	// ExamPassingScore is the fixed pass bar of a practice exam, independent
	// of any single quiz's configured threshold.
	ExamPassingScore = 70
	// ExamQuestionTarget is the nominal size of a full practice exam.
	ExamQuestionTarget = 50
)

// examBlueprint maps each competency area slug to its question count in a
// generated exam. The counts are hand-tuned to sum to ExamQuestionTarget
// while staying inside each area's syllabus band; an area whose question
// pool runs short simply contributes fewer questions.
var examBlueprint = map[string]int{
	"fhir-fundamentals":    10,
	"resource-model":       13,
	"exchange-api":         13,
	"conformance-profiles": 8,
	"terminology-safety":   6,
}

// DefaultCompetencyAreas is the certification syllabus reference data seeded
// at startup. Each area's slug doubles as the slug of its backing quiz.
var DefaultCompetencyAreas = []model.CompetencyArea{
	{Slug: "fhir-fundamentals", Name: "FHIR Fundamentals", MinPercent: 18, MaxPercent: 22, OrderIndex: 1},
	{Slug: "resource-model", Name: "Resource Model & Structure", MinPercent: 24, MaxPercent: 28, OrderIndex: 2},
	{Slug: "exchange-api", Name: "Exchange & RESTful API", MinPercent: 24, MaxPercent: 28, OrderIndex: 3},
	{Slug: "conformance-profiles", Name: "Conformance & Profiling", MinPercent: 14, MaxPercent: 18, OrderIndex: 4},
	{Slug: "terminology-safety", Name: "Terminology & Safety", MinPercent: 10, MaxPercent: 14, OrderIndex: 5},
}
