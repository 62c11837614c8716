package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hferraz/patternbook/pkg/models"
)

// QuizEngine serves questions from the built-in bank and grades sessions.
type QuizEngine interface {
	Questions(id string, n int) (models.PatternID, []models.QuizQuestion, error)
	Grade(pattern models.PatternID, questions []models.QuizQuestion, answers []int) (*models.QuizResult, error)
}

type quizEngine struct {
	catalog  Catalog
	recorder StudyRecorder
	events   EventLogger
	bank     map[models.PatternID][]models.QuizQuestion
}

// NewQuizEngine creates a QuizEngine over the built-in question bank.
// recorder and events may be nil.
func NewQuizEngine(catalog Catalog, recorder StudyRecorder, events EventLogger) QuizEngine {
	return &quizEngine{
		catalog:  catalog,
		recorder: recorder,
		events:   events,
		bank:     builtinQuestions(),
	}
}

// Questions resolves the pattern and returns up to n questions for it in
// randomized order. n <= 0 returns the whole bank for the pattern.
func (q *quizEngine) Questions(id string, n int) (models.PatternID, []models.QuizQuestion, error) {
	pattern, err := q.catalog.Get(id)
	if err != nil {
		return "", nil, err
	}

	bank, ok := q.bank[pattern.ID]
	if !ok || len(bank) == 0 {
		return "", nil, fmt.Errorf("no quiz questions for pattern %q", pattern.ID)
	}

	questions := make([]models.QuizQuestion, len(bank))
	copy(questions, bank)
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	if n > 0 && n < len(questions) {
		questions = questions[:n]
	}
	return pattern.ID, questions, nil
}

// Grade scores the answers against the questions, records the result in
// the study log and event log, and returns it. answers must be the same
// length as questions; unanswered questions count as wrong only when the
// index is out of the choice range.
func (q *quizEngine) Grade(pattern models.PatternID, questions []models.QuizQuestion, answers []int) (*models.QuizResult, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("grading quiz: no questions")
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("grading quiz: %d answers for %d questions", len(answers), len(questions))
	}

	correct := 0
	for i, question := range questions {
		if answers[i] == question.Answer {
			correct++
		}
	}

	result := &models.QuizResult{
		Pattern:  pattern,
		Asked:    len(questions),
		Correct:  correct,
		TakenAt:  time.Now().UTC(),
		ScorePct: correct * 100 / len(questions),
	}

	if q.recorder != nil {
		record := models.StudyRecord{
			Pattern:  pattern,
			Activity: models.ActivityQuiz,
			At:       result.TakenAt,
			ScorePct: result.ScorePct,
		}
		if err := q.recorder.RecordStudy(record); err != nil {
			return nil, fmt.Errorf("recording quiz result: %w", err)
		}
	}
	if q.events != nil {
		_ = q.events.LogEvent("quiz.taken", map[string]any{
			"pattern":   string(pattern),
			"score_pct": result.ScorePct,
		})
	}
	return result, nil
}

func builtinQuestions() map[models.PatternID][]models.QuizQuestion {
	return map[models.PatternID][]models.QuizQuestion{
		models.PatternStrategy: {
			{
				Pattern: models.PatternStrategy,
				Prompt:  "How does a duck get its flying behavior?",
				Choices: []string{
					"It inherits fly() from the Duck base type",
					"It holds a FlyBehavior value and delegates to it",
					"It switches on its own concrete type",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternStrategy,
				Prompt:  "When does a SetFlyBehavior call take effect?",
				Choices: []string{
					"On the next PerformFly call",
					"Only for ducks created afterwards",
					"Never; behaviors are fixed at construction",
				},
				Answer: 0,
			},
			{
				Pattern: models.PatternStrategy,
				Prompt:  "Which principle does the pattern lean on most?",
				Choices: []string{
					"Favor inheritance over composition",
					"Favor composition over inheritance",
					"One class per behavior combination",
				},
				Answer: 1,
			},
		},
		models.PatternObserver: {
			{
				Pattern: models.PatternObserver,
				Prompt:  "What happens when SetMeasurements is called?",
				Choices: []string{
					"Observers poll for the new state later",
					"Every registered observer is pushed the new state",
					"Only the first registered observer is notified",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternObserver,
				Prompt:  "What does removing an observer that was never registered do?",
				Choices: []string{
					"Returns an error",
					"Panics",
					"Nothing; it is a no-op",
				},
				Answer: 2,
			},
			{
				Pattern: models.PatternObserver,
				Prompt:  "What does the subject know about its observers?",
				Choices: []string{
					"Their concrete display types",
					"Only that they implement Update",
					"Their rendering format",
				},
				Answer: 1,
			},
		},
		models.PatternDecorator: {
			{
				Pattern: models.PatternDecorator,
				Prompt:  "What is the cost of a decorated beverage?",
				Choices: []string{
					"The most expensive layer's cost",
					"The wrapped cost plus the condiment's own price",
					"A flat per-condiment fee",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternDecorator,
				Prompt:  "Why can condiments stack to any depth?",
				Choices: []string{
					"Each decorator implements the same Beverage interface it wraps",
					"A registry tracks the allowed orderings",
					"The base drink enumerates its condiments",
				},
				Answer: 0,
			},
			{
				Pattern: models.PatternDecorator,
				Prompt:  "How does Soy price itself correctly on a Venti drink?",
				Choices: []string{
					"It asks the wrapped beverage for its size",
					"Sizes are passed to every decorator constructor",
					"It cannot; soy has one price",
				},
				Answer: 0,
			},
		},
		models.PatternFactoryMethod: {
			{
				Pattern: models.PatternFactoryMethod,
				Prompt:  "Which part of the pizza store is the factory method?",
				Choices: []string{
					"OrderPizza",
					"CreatePizza",
					"Prepare",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternFactoryMethod,
				Prompt:  "What does OrderPizza know about the pizza it handles?",
				Choices: []string{
					"Its concrete regional type",
					"Only the Pizza interface",
					"Its topping list",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternFactoryMethod,
				Prompt:  "How does the factory method differ from a simple factory?",
				Choices: []string{
					"It centralizes creation in one helper object",
					"It defers creation to the creator's subtypes",
					"It caches created products",
				},
				Answer: 1,
			},
		},
		models.PatternSingleton: {
			{
				Pattern: models.PatternSingleton,
				Prompt:  "What is the idiomatic Go replacement for double-checked locking?",
				Choices: []string{
					"A package init function",
					"sync.Once",
					"A global mutex checked twice",
				},
				Answer: 1,
			},
			{
				Pattern: models.PatternSingleton,
				Prompt:  "What do two concurrent GetBoiler callers receive?",
				Choices: []string{
					"The same instance",
					"Two instances, merged later",
					"An error for the second caller",
				},
				Answer: 0,
			},
			{
				Pattern: models.PatternSingleton,
				Prompt:  "Why does the boiler still carry its own mutex?",
				Choices: []string{
					"sync.Once only guards initialization, not the instance's state",
					"sync.Once requires a paired mutex",
					"It does not; sync.Once covers everything",
				},
				Answer: 0,
			},
		},
	}
}
