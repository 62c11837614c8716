package observability

import (
	"fmt"
	"time"
)

// AlertSeverity represents the urgency of a review alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert represents a triggered review condition.
type Alert struct {
	ID          string        `json:"id"`
	Condition   string        `json:"condition"`
	Severity    AlertSeverity `json:"severity"`
	Message     string        `json:"message"`
	TriggeredAt time.Time     `json:"triggered_at"`
}

// ReviewThresholds configures when review alerts should fire.
type ReviewThresholds struct {
	// IntervalDays is how long a pattern may go without any study activity
	// before a review alert fires.
	IntervalDays int `yaml:"interval_days" json:"interval_days"`
}

// DefaultReviewThresholds returns sensible defaults for review alerting.
func DefaultReviewThresholds() ReviewThresholds {
	return ReviewThresholds{IntervalDays: 7}
}

// ReviewAlertEngine evaluates review conditions against the event log.
type ReviewAlertEngine interface {
	Evaluate() ([]Alert, error)
}

// reviewAlertEngine implements ReviewAlertEngine by reading study events
// and checking thresholds for every pattern in the catalog.
type reviewAlertEngine struct {
	eventLog   EventLog
	patterns   []string
	thresholds ReviewThresholds
}

// NewReviewAlertEngine creates a ReviewAlertEngine covering the given
// pattern IDs.
func NewReviewAlertEngine(eventLog EventLog, patterns []string, thresholds ReviewThresholds) ReviewAlertEngine {
	return &reviewAlertEngine{
		eventLog:   eventLog,
		patterns:   patterns,
		thresholds: thresholds,
	}
}

// Evaluate reads all events and returns an alert for every pattern that
// has never been studied or has gone unstudied past the interval.
func (re *reviewAlertEngine) Evaluate() ([]Alert, error) {
	now := time.Now().UTC()

	events, err := re.eventLog.Read(EventFilter{})
	if err != nil {
		return nil, fmt.Errorf("reading events for review evaluation: %w", err)
	}

	lastActivity := make(map[string]time.Time)
	for _, event := range events {
		pattern, _ := event.Data["pattern"].(string)
		if pattern == "" {
			continue
		}
		if event.Time.After(lastActivity[pattern]) {
			lastActivity[pattern] = event.Time
		}
	}

	threshold := time.Duration(re.thresholds.IntervalDays) * 24 * time.Hour
	var alerts []Alert
	for _, pattern := range re.patterns {
		last, studied := lastActivity[pattern]
		switch {
		case !studied:
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("untouched-%s", pattern),
				Condition:   "pattern_never_studied",
				Severity:    SeverityLow,
				Message:     fmt.Sprintf("pattern %s has never been studied", pattern),
				TriggeredAt: now,
			})
		case now.Sub(last) > threshold:
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("due-%s", pattern),
				Condition:   "pattern_review_due",
				Severity:    SeverityMedium,
				Message:     fmt.Sprintf("pattern %s has not been studied for more than %d days", pattern, re.thresholds.IntervalDays),
				TriggeredAt: now,
			})
		}
	}

	return alerts, nil
}
