package core

import (
	"fmt"
	"time"

	"github.com/hferraz/patternbook/pkg/models"
)

// ReviewItem is one pattern due for review and why.
type ReviewItem struct {
	Pattern models.PatternID
	Reason  string
	// DaysSince is days since the last study activity; -1 when never studied.
	DaysSince int
}

// ReviewPlanner decides which patterns are due for review.
type ReviewPlanner interface {
	Due() ([]ReviewItem, error)
	MarkReviewed(id string) error
}

type reviewPlanner struct {
	catalog  Catalog
	tracker  ProgressTracker
	recorder StudyRecorder
	events   EventLogger
	cfg      models.ReviewConfig
	now      func() time.Time
}

// NewReviewPlanner creates a ReviewPlanner with the given thresholds.
// recorder and events may be nil.
func NewReviewPlanner(catalog Catalog, tracker ProgressTracker, recorder StudyRecorder, events EventLogger, cfg models.ReviewConfig) ReviewPlanner {
	if cfg.IntervalDays <= 0 {
		cfg.IntervalDays = 7
	}
	if cfg.MasteredIntervalDays <= 0 {
		cfg.MasteredIntervalDays = 30
	}
	return &reviewPlanner{
		catalog:  catalog,
		tracker:  tracker,
		recorder: recorder,
		events:   events,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Due returns the patterns due for review: never studied, or last studied
// longer ago than the interval for their mastery level. Mastered patterns
// get the longer interval.
func (rp *reviewPlanner) Due() ([]ReviewItem, error) {
	all, err := rp.tracker.AllProgress()
	if err != nil {
		return nil, fmt.Errorf("planning reviews: %w", err)
	}

	now := rp.now()
	var due []ReviewItem
	for _, p := range all {
		if p.LastStudied == nil {
			due = append(due, ReviewItem{
				Pattern:   p.Pattern,
				Reason:    "never studied",
				DaysSince: -1,
			})
			continue
		}

		interval := rp.cfg.IntervalDays
		if p.Mastery == models.MasteryMastered {
			interval = rp.cfg.MasteredIntervalDays
		}

		days := int(now.Sub(*p.LastStudied).Hours() / 24)
		if days > interval {
			due = append(due, ReviewItem{
				Pattern:   p.Pattern,
				Reason:    fmt.Sprintf("last studied %d days ago (interval %d)", days, interval),
				DaysSince: days,
			})
		}
	}
	return due, nil
}

// MarkReviewed records a completed review for the pattern.
func (rp *reviewPlanner) MarkReviewed(id string) error {
	pattern, err := rp.catalog.Get(id)
	if err != nil {
		return err
	}

	if rp.recorder != nil {
		record := models.StudyRecord{
			Pattern:  pattern.ID,
			Activity: models.ActivityReview,
			At:       rp.now(),
		}
		if err := rp.recorder.RecordStudy(record); err != nil {
			return fmt.Errorf("recording review: %w", err)
		}
	}
	if rp.events != nil {
		_ = rp.events.LogEvent("review.completed", map[string]any{"pattern": string(pattern.ID)})
	}
	return nil
}
