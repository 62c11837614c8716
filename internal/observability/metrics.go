package observability

import (
	"fmt"
	"time"
)

// Metrics holds study metrics derived from the event log.
type Metrics struct {
	PatternsViewed  int            `json:"patterns_viewed"`
	DemosRun        int            `json:"demos_run"`
	QuizzesTaken    int            `json:"quizzes_taken"`
	NotesAdded      int            `json:"notes_added"`
	ReviewsDone     int            `json:"reviews_done"`
	ViewsByPattern  map[string]int `json:"views_by_pattern"`
	DemosByPattern  map[string]int `json:"demos_by_pattern"`
	AvgQuizScorePct int            `json:"avg_quiz_score_pct"`
	EventCount      int            `json:"event_count"`
	OldestEvent     *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent     *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives study metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		ViewsByPattern: make(map[string]int),
		DemosByPattern: make(map[string]int),
	}

	m.EventCount = len(events)

	var scoreSum, scoreCount int
	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		pattern, _ := event.Data["pattern"].(string)

		switch event.Type {
		case "pattern.viewed":
			m.PatternsViewed++
			if pattern != "" {
				m.ViewsByPattern[pattern]++
			}
		case "demo.run":
			m.DemosRun++
			if pattern != "" {
				m.DemosByPattern[pattern]++
			}
		case "quiz.taken":
			m.QuizzesTaken++
			// JSON numbers decode as float64.
			if score, ok := event.Data["score_pct"].(float64); ok {
				scoreSum += int(score)
				scoreCount++
			}
		case "note.added":
			m.NotesAdded++
		case "review.completed":
			m.ReviewsDone++
		}
	}

	if scoreCount > 0 {
		m.AvgQuizScorePct = scoreSum / scoreCount
	}

	return m, nil
}
