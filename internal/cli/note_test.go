package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hferraz/patternbook/pkg/models"
)

// noteMock supports the note manager surface the commands need.
type noteMock struct {
	addNoteFn   func(patternID, text string, tags []string) (string, error)
	getNoteFn   func(id string) (*models.Note, error)
	listNotesFn func(patternID string) ([]models.Note, error)
	byTagsFn    func(tags []string) ([]models.Note, error)
}

func (m *noteMock) AddNote(patternID, text string, tags []string) (string, error) {
	if m.addNoteFn != nil {
		return m.addNoteFn(patternID, text, tags)
	}
	return "", fmt.Errorf("not implemented")
}

func (m *noteMock) GetNote(id string) (*models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *noteMock) ListNotes(patternID string) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(patternID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *noteMock) QueryByTags(tags []string) ([]models.Note, error) {
	if m.byTagsFn != nil {
		return m.byTagsFn(tags)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *noteMock) Search(query string) ([]models.Note, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestNoteCommand_Registration(t *testing.T) {
	subcommands := rootCmd.Commands()
	found := false
	for _, cmd := range subcommands {
		if cmd.Name() == "note" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'note' command to be registered")
	}
}

func TestNoteAddCommand_NilManager(t *testing.T) {
	origNotes := Notes
	defer func() { Notes = origNotes }()
	Notes = nil

	err := noteAddCmd.RunE(noteAddCmd, []string{"strategy"})
	if err == nil {
		t.Fatal("expected error when Notes is nil")
	}
	if !strings.Contains(err.Error(), "note manager not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNoteAddCommand_RequiresText(t *testing.T) {
	origNotes := Notes
	origText := noteAddText
	defer func() {
		Notes = origNotes
		noteAddText = origText
	}()
	Notes = &noteMock{}
	noteAddText = "   "

	err := noteAddCmd.RunE(noteAddCmd, []string{"strategy"})
	if err == nil {
		t.Fatal("expected error for missing text")
	}
	if !strings.Contains(err.Error(), "note text is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNoteAddCommand_AddsNote(t *testing.T) {
	origNotes := Notes
	origText := noteAddText
	origTags := noteAddTags
	defer func() {
		Notes = origNotes
		noteAddText = origText
		noteAddTags = origTags
		noteAddCmd.SetOut(nil)
	}()

	var capturedPattern, capturedText string
	var capturedTags []string
	Notes = &noteMock{
		addNoteFn: func(patternID, text string, tags []string) (string, error) {
			capturedPattern = patternID
			capturedText = text
			capturedTags = tags
			return "N-00007", nil
		},
	}
	noteAddText = "decorators stack freely"
	noteAddTags = []string{"insight"}

	var buf bytes.Buffer
	noteAddCmd.SetOut(&buf)

	if err := noteAddCmd.RunE(noteAddCmd, []string{"decorator"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedPattern != "decorator" || capturedText != "decorators stack freely" || len(capturedTags) != 1 {
		t.Errorf("captured = %q %q %v", capturedPattern, capturedText, capturedTags)
	}
	if !strings.Contains(buf.String(), "Added note N-00007") {
		t.Errorf("confirmation missing: %q", buf.String())
	}
}

func TestNoteListCommand_Empty(t *testing.T) {
	origNotes := Notes
	origPattern := noteListPattern
	origTags := noteListTags
	defer func() {
		Notes = origNotes
		noteListPattern = origPattern
		noteListTags = origTags
		noteListCmd.SetOut(nil)
	}()
	Notes = &noteMock{
		listNotesFn: func(patternID string) ([]models.Note, error) { return nil, nil },
	}
	noteListPattern = ""
	noteListTags = nil

	var buf bytes.Buffer
	noteListCmd.SetOut(&buf)

	if err := noteListCmd.RunE(noteListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No notes found.") {
		t.Errorf("empty message missing: %q", buf.String())
	}
}

func TestNoteListCommand_ByTags(t *testing.T) {
	origNotes := Notes
	origTags := noteListTags
	defer func() {
		Notes = origNotes
		noteListTags = origTags
		noteListCmd.SetOut(nil)
	}()

	var capturedTags []string
	Notes = &noteMock{
		byTagsFn: func(tags []string) ([]models.Note, error) {
			capturedTags = tags
			return []models.Note{
				{ID: "N-00001", Pattern: models.PatternStrategy, Text: "tagged", Created: time.Now()},
			}, nil
		},
	}
	noteListTags = []string{"gotcha"}

	var buf bytes.Buffer
	noteListCmd.SetOut(&buf)

	if err := noteListCmd.RunE(noteListCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capturedTags) != 1 || capturedTags[0] != "gotcha" {
		t.Errorf("capturedTags = %v", capturedTags)
	}
	if !strings.Contains(buf.String(), "N-00001") {
		t.Errorf("note row missing: %q", buf.String())
	}
}

func TestNoteShowCommand_ShowsNote(t *testing.T) {
	origNotes := Notes
	defer func() {
		Notes = origNotes
		noteShowCmd.SetOut(nil)
	}()
	Notes = &noteMock{
		getNoteFn: func(id string) (*models.Note, error) {
			return &models.Note{
				ID:      id,
				Pattern: models.PatternSingleton,
				Text:    "one boiler to rule them all",
				Tags:    []string{"joke"},
				Created: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	var buf bytes.Buffer
	noteShowCmd.SetOut(&buf)

	if err := noteShowCmd.RunE(noteShowCmd, []string{"N-00003"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"N-00003", "singleton", "tags: joke", "one boiler to rule them all"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
