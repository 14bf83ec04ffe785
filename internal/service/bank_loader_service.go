package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhirlab/quizforge/internal/model"
	"github.com/fhirlab/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionBankLoader populates the quiz store from static bank files at
// startup. Loading is idempotent-skip: a file whose quiz slug is already
// present is skipped whole, never merged.
type QuestionBankLoader interface {
	LoadDir(dir string) error
}

type questionBankLoader struct {
	quizRepo repository.QuizRepository
}

func NewQuestionBankLoader(quizRepo repository.QuizRepository) QuestionBankLoader {
	return &questionBankLoader{quizRepo: quizRepo}
}

type bankChoice struct {
	ChoiceText string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct"`
}

type bankQuestion struct {
	QuestionText string       `json:"question_text"`
	Explanation  string       `json:"explanation"`
	Tags         []string     `json:"tags"`
	Choices      []bankChoice `json:"choices"`
}

type bankQuiz struct {
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	TimeLimitMinutes *int           `json:"time_limit_minutes"`
	PassingScore     int            `json:"passing_score"`
	Questions        []bankQuestion `json:"questions"`
}

// LoadDir loads every *.json bank file in dir. A file that fails to read or
// parse is logged and skipped; a single bad file never aborts the load.
func (l *questionBankLoader) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading question bank directory %s: %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := l.loadFile(path); err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to load question bank file, continuing")
			continue
		}
		loaded++
	}

	log.Info().Int("files", loaded).Str("dir", dir).Msg("Question bank load finished")
	return nil
}

func (l *questionBankLoader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading bank file: %w", err)
	}

	var bank bankQuiz
	if err := json.Unmarshal(data, &bank); err != nil {
		return fmt.Errorf("parsing bank file: %w", err)
	}
	if bank.Slug == "" {
		return fmt.Errorf("bank file %s has no quiz slug", path)
	}

	exists, err := l.quizRepo.ExistsBySlug(bank.Slug)
	if err != nil {
		return fmt.Errorf("checking existing quiz %q: %w", bank.Slug, err)
	}
	if exists {
		log.Info().Str("slug", bank.Slug).Str("file", path).Msg("Quiz already loaded, skipping bank file")
		return nil
	}

	quiz := model.Quiz{
		Slug:             bank.Slug,
		Title:            bank.Title,
		Description:      bank.Description,
		TimeLimitMinutes: bank.TimeLimitMinutes,
		PassingScore:     bank.PassingScore,
	}
	if quiz.PassingScore == 0 {
		quiz.PassingScore = 80
	}

	for qi, bq := range bank.Questions {
		question := model.Question{
			QuestionText: bq.QuestionText,
			Explanation:  bq.Explanation,
			Tags:         bq.Tags,
			OrderIndex:   qi + 1,
		}
		for ci, bc := range bq.Choices {
			question.Choices = append(question.Choices, model.Choice{
				ChoiceText: bc.ChoiceText,
				IsCorrect:  bc.IsCorrect,
				OrderIndex: ci + 1,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := l.quizRepo.Create(&quiz); err != nil {
		return fmt.Errorf("creating quiz %q: %w", bank.Slug, err)
	}

	log.Info().Str("slug", bank.Slug).Int("questions", len(quiz.Questions)).Msg("Loaded question bank")
	return nil
}
