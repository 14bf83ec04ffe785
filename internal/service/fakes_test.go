package service

import (
	"sort"

	"github.com/fhirlab/quizforge/internal/model"
	"gorm.io/gorm"
)

// In-memory fakes that satisfy the repository interfaces. Question and choice
// IDs are assigned from one shared counter so cross-quiz uniqueness matches
// the real store.

type fakeStore struct {
	quizzes  []*model.Quiz
	attempts []model.QuizAttempt
	areas    []model.CompetencyArea
	awards   []model.PointAward

	nextQuizID     uint
	nextQuestionID uint
	nextChoiceID   uint
	nextAttemptID  uint
	nextAwardID    uint

	failAttemptCreate bool
	failAwardCreate   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// addQuiz registers a quiz whose questions each get numChoices choices with
// the first choice correct, unless correctless is set for that question.
func (s *fakeStore) addQuiz(slug string, passingScore, numQuestions, numChoices int) *model.Quiz {
	s.nextQuizID++
	quiz := &model.Quiz{
		ID:           s.nextQuizID,
		Slug:         slug,
		Title:        "Quiz " + slug,
		PassingScore: passingScore,
	}
	for i := 0; i < numQuestions; i++ {
		s.nextQuestionID++
		q := model.Question{
			ID:           s.nextQuestionID,
			QuizID:       quiz.ID,
			QuestionText: "question",
			Explanation:  "explanation",
			OrderIndex:   i + 1,
		}
		for c := 0; c < numChoices; c++ {
			s.nextChoiceID++
			q.Choices = append(q.Choices, model.Choice{
				ID:         s.nextChoiceID,
				QuestionID: q.ID,
				ChoiceText: "choice",
				IsCorrect:  c == 0,
				OrderIndex: c + 1,
			})
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	s.quizzes = append(s.quizzes, quiz)
	return quiz
}

func (s *fakeStore) addAreas(areas []model.CompetencyArea) {
	s.areas = append(s.areas, areas...)
}

// correctChoiceID returns the ID of the question's correct choice.
func correctChoiceID(q model.Question) uint {
	for _, c := range q.Choices {
		if c.IsCorrect {
			return c.ID
		}
	}
	return 0
}

// wrongChoiceID returns the ID of one incorrect choice of the question.
func wrongChoiceID(q model.Question) uint {
	for _, c := range q.Choices {
		if !c.IsCorrect {
			return c.ID
		}
	}
	return 0
}

/* ---------------- QuizRepository ---------------- */

type fakeQuizRepo struct{ store *fakeStore }

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	r.store.nextQuizID++
	quiz.ID = r.store.nextQuizID
	for i := range quiz.Questions {
		r.store.nextQuestionID++
		quiz.Questions[i].ID = r.store.nextQuestionID
		quiz.Questions[i].QuizID = quiz.ID
		for c := range quiz.Questions[i].Choices {
			r.store.nextChoiceID++
			quiz.Questions[i].Choices[c].ID = r.store.nextChoiceID
			quiz.Questions[i].Choices[c].QuestionID = quiz.Questions[i].ID
		}
	}
	r.store.quizzes = append(r.store.quizzes, quiz)
	return nil
}

func (r *fakeQuizRepo) FindBySlug(slug string) (*model.Quiz, error) {
	for _, q := range r.store.quizzes {
		if q.Slug == slug {
			bare := *q
			bare.Questions = nil
			return &bare, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuizRepo) FindBySlugWithQuestions(slug string) (*model.Quiz, error) {
	for _, q := range r.store.quizzes {
		if q.Slug == slug {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuizRepo) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	var out []struct {
		model.Quiz
		QuestionCount int
	}
	for _, q := range r.store.quizzes {
		entry := struct {
			model.Quiz
			QuestionCount int
		}{Quiz: *q, QuestionCount: len(q.Questions)}
		entry.Quiz.Questions = nil
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeQuizRepo) ExistsBySlug(slug string) (bool, error) {
	for _, q := range r.store.quizzes {
		if q.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

/* ---------------- QuestionRepository ---------------- */

type fakeQuestionRepo struct{ store *fakeStore }

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for _, quiz := range r.store.quizzes {
		for i := range quiz.Questions {
			if quiz.Questions[i].ID == id {
				return &quiz.Questions[i], nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	for _, quiz := range r.store.quizzes {
		if quiz.ID == quizID {
			out := make([]model.Question, len(quiz.Questions))
			copy(out, quiz.Questions)
			return out, nil
		}
	}
	return nil, nil
}

/* ---------------- AttemptRepository ---------------- */

type fakeAttemptRepo struct{ store *fakeStore }

func (r *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	if r.store.failAttemptCreate {
		return gorm.ErrInvalidTransaction
	}
	r.store.nextAttemptID++
	attempt.ID = r.store.nextAttemptID
	r.store.attempts = append(r.store.attempts, *attempt)
	return nil
}

func (r *fakeAttemptRepo) FindBySession(sessionID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.store.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (r *fakeAttemptRepo) FindBySessionAndQuiz(sessionID, quizSlug string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.store.attempts {
		if a.SessionID == sessionID && a.QuizSlug == quizSlug {
			out = append(out, a)
		}
	}
	return out, nil
}

/* ---------------- PointAwardRepository ---------------- */

type fakePointAwardRepo struct{ store *fakeStore }

func (r *fakePointAwardRepo) Create(award *model.PointAward) error {
	if r.store.failAwardCreate {
		return gorm.ErrInvalidTransaction
	}
	r.store.nextAwardID++
	award.ID = r.store.nextAwardID
	r.store.awards = append(r.store.awards, *award)
	return nil
}

func (r *fakePointAwardRepo) FindBySession(sessionID string) ([]model.PointAward, error) {
	var out []model.PointAward
	for _, a := range r.store.awards {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakePointAwardRepo) Exists(sessionID, quizSlug, awardType string) (bool, error) {
	for _, a := range r.store.awards {
		if a.SessionID == sessionID && a.QuizSlug == quizSlug && a.AwardType == awardType {
			return true, nil
		}
	}
	return false, nil
}

/* ---------------- CompetencyRepository ---------------- */

type fakeCompetencyRepo struct{ store *fakeStore }

func (r *fakeCompetencyRepo) FindAllOrdered() ([]model.CompetencyArea, error) {
	out := make([]model.CompetencyArea, len(r.store.areas))
	copy(out, r.store.areas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *fakeCompetencyRepo) Upsert(area *model.CompetencyArea) error {
	for i := range r.store.areas {
		if r.store.areas[i].Slug == area.Slug {
			r.store.areas[i] = *area
			return nil
		}
	}
	r.store.areas = append(r.store.areas, *area)
	return nil
}
