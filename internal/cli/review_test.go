package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/internal/observability"
	"github.com/hferraz/patternbook/pkg/models"
)

// reviewMock supports Due and MarkReviewed.
type reviewMock struct {
	dueFn          func() ([]core.ReviewItem, error)
	markReviewedFn func(id string) error
}

func (m *reviewMock) Due() ([]core.ReviewItem, error) {
	if m.dueFn != nil {
		return m.dueFn()
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *reviewMock) MarkReviewed(id string) error {
	if m.markReviewedFn != nil {
		return m.markReviewedFn(id)
	}
	return fmt.Errorf("not implemented")
}

// alertEngineMock returns a fixed alert set.
type alertEngineMock struct {
	alerts []observability.Alert
}

func (m *alertEngineMock) Evaluate() ([]observability.Alert, error) {
	return m.alerts, nil
}

// notifierMock captures notified alerts.
type notifierMock struct {
	notified [][]observability.Alert
}

func (m *notifierMock) Notify(alerts []observability.Alert) error {
	m.notified = append(m.notified, alerts)
	return nil
}

func TestReviewCommand_Registration(t *testing.T) {
	subcommands := rootCmd.Commands()
	found := false
	for _, cmd := range subcommands {
		if cmd.Name() == "review" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'review' command to be registered")
	}
}

func TestReviewCommand_NilPlanner(t *testing.T) {
	origReviews := Reviews
	defer func() { Reviews = origReviews }()
	Reviews = nil

	err := reviewCmd.RunE(reviewCmd, []string{})
	if err == nil {
		t.Fatal("expected error when Reviews is nil")
	}
	if !strings.Contains(err.Error(), "review planner not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReviewCommand_NothingDue(t *testing.T) {
	origReviews := Reviews
	origNotify := reviewNotify
	defer func() {
		Reviews = origReviews
		reviewNotify = origNotify
		reviewCmd.SetOut(nil)
	}()
	Reviews = &reviewMock{
		dueFn: func() ([]core.ReviewItem, error) { return nil, nil },
	}
	reviewNotify = false

	var buf bytes.Buffer
	reviewCmd.SetOut(&buf)

	if err := reviewCmd.RunE(reviewCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Nothing due for review.") {
		t.Errorf("empty message missing: %q", buf.String())
	}
}

func TestReviewCommand_ListsDue(t *testing.T) {
	origReviews := Reviews
	origNotify := reviewNotify
	defer func() {
		Reviews = origReviews
		reviewNotify = origNotify
		reviewCmd.SetOut(nil)
	}()
	Reviews = &reviewMock{
		dueFn: func() ([]core.ReviewItem, error) {
			return []core.ReviewItem{
				{Pattern: models.PatternStrategy, Reason: "never studied", DaysSince: -1},
				{Pattern: models.PatternDecorator, Reason: "last studied 9 days ago (interval 7)", DaysSince: 9},
			}, nil
		},
	}
	reviewNotify = false

	var buf bytes.Buffer
	reviewCmd.SetOut(&buf)

	if err := reviewCmd.RunE(reviewCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Due for review (2):") {
		t.Errorf("heading missing:\n%s", out)
	}
	if !strings.Contains(out, "never studied") || !strings.Contains(out, "9 days ago") {
		t.Errorf("reasons missing:\n%s", out)
	}
}

func TestReviewCommand_Notify(t *testing.T) {
	origReviews := Reviews
	origNotify := reviewNotify
	origEngine := AlertEngine
	origNotifier := Notifier
	defer func() {
		Reviews = origReviews
		reviewNotify = origNotify
		AlertEngine = origEngine
		Notifier = origNotifier
		reviewCmd.SetOut(nil)
	}()

	Reviews = &reviewMock{
		dueFn: func() ([]core.ReviewItem, error) {
			return []core.ReviewItem{{Pattern: models.PatternStrategy, Reason: "never studied", DaysSince: -1}}, nil
		},
	}
	reviewNotify = true
	AlertEngine = &alertEngineMock{alerts: []observability.Alert{
		{ID: "review-strategy", Condition: "pattern_never_studied", Severity: observability.SeverityLow, Message: "strategy has never been studied"},
	}}
	notifier := &notifierMock{}
	Notifier = notifier

	var buf bytes.Buffer
	reviewCmd.SetOut(&buf)

	if err := reviewCmd.RunE(reviewCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.notified) != 1 || len(notifier.notified[0]) != 1 {
		t.Errorf("notified = %+v", notifier.notified)
	}
}

func TestReviewCommand_NotifyWithoutNotifier(t *testing.T) {
	origReviews := Reviews
	origNotify := reviewNotify
	origEngine := AlertEngine
	origNotifier := Notifier
	defer func() {
		Reviews = origReviews
		reviewNotify = origNotify
		AlertEngine = origEngine
		Notifier = origNotifier
		reviewCmd.SetOut(nil)
	}()

	Reviews = &reviewMock{
		dueFn: func() ([]core.ReviewItem, error) {
			return []core.ReviewItem{{Pattern: models.PatternStrategy, Reason: "never studied"}}, nil
		},
	}
	reviewNotify = true
	AlertEngine = &alertEngineMock{}
	Notifier = nil

	var buf bytes.Buffer
	reviewCmd.SetOut(&buf)

	err := reviewCmd.RunE(reviewCmd, []string{})
	if err == nil {
		t.Fatal("expected error when Notifier is nil")
	}
	if !strings.Contains(err.Error(), "notifier not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReviewDoneCommand_MarksReviewed(t *testing.T) {
	origReviews := Reviews
	defer func() {
		Reviews = origReviews
		reviewDoneCmd.SetOut(nil)
	}()

	var capturedID string
	Reviews = &reviewMock{
		markReviewedFn: func(id string) error {
			capturedID = id
			return nil
		},
	}

	var buf bytes.Buffer
	reviewDoneCmd.SetOut(&buf)

	if err := reviewDoneCmd.RunE(reviewDoneCmd, []string{"observer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "observer" {
		t.Errorf("capturedID = %q", capturedID)
	}
	if !strings.Contains(buf.String(), "Marked observer as reviewed.") {
		t.Errorf("confirmation missing: %q", buf.String())
	}
}

func TestReviewDoneCommand_UnknownPattern(t *testing.T) {
	origReviews := Reviews
	defer func() { Reviews = origReviews }()
	Reviews = &reviewMock{
		markReviewedFn: func(id string) error {
			return fmt.Errorf("pattern %q not found", id)
		},
	}

	if err := reviewDoneCmd.RunE(reviewDoneCmd, []string{"flyweight"}); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}
