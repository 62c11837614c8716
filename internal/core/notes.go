package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/hferraz/patternbook/pkg/models"
)

// NoteStoreAccess is the storage surface the note manager needs.
// Implemented by the storage layer and adapted in app wiring.
type NoteStoreAccess interface {
	AddNote(note models.Note) (string, error)
	GetNote(id string) (*models.Note, error)
	GetAllNotes() ([]models.Note, error)
	QueryByPattern(pattern models.PatternID) ([]models.Note, error)
	QueryByTags(tags []string) ([]models.Note, error)
	Search(query string) ([]models.Note, error)
}

// NoteIDGenerator produces unique sequential note IDs.
type NoteIDGenerator interface {
	GenerateNoteID() (string, error)
}

// NoteManager is the notebook's annotation surface: validated note
// creation plus queries over the store.
type NoteManager interface {
	AddNote(patternID, text string, tags []string) (string, error)
	GetNote(id string) (*models.Note, error)
	ListNotes(patternID string) ([]models.Note, error)
	QueryByTags(tags []string) ([]models.Note, error)
	Search(query string) ([]models.Note, error)
}

type noteManager struct {
	catalog  Catalog
	store    NoteStoreAccess
	idGen    NoteIDGenerator
	recorder StudyRecorder
	events   EventLogger
}

// NewNoteManager creates a NoteManager. recorder and events may be nil.
func NewNoteManager(catalog Catalog, store NoteStoreAccess, idGen NoteIDGenerator, recorder StudyRecorder, events EventLogger) NoteManager {
	return &noteManager{
		catalog:  catalog,
		store:    store,
		idGen:    idGen,
		recorder: recorder,
		events:   events,
	}
}

// AddNote validates the pattern, assigns an ID, stores the note, and
// records the activity.
func (m *noteManager) AddNote(patternID, text string, tags []string) (string, error) {
	pattern, err := m.catalog.Get(patternID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("adding note: text must not be empty")
	}

	id, err := m.idGen.GenerateNoteID()
	if err != nil {
		return "", fmt.Errorf("adding note: %w", err)
	}

	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			clean = append(clean, t)
		}
	}

	note := models.Note{
		ID:      id,
		Pattern: pattern.ID,
		Text:    strings.TrimSpace(text),
		Tags:    clean,
		Created: time.Now().UTC(),
	}
	if _, err := m.store.AddNote(note); err != nil {
		return "", err
	}

	if m.recorder != nil {
		record := models.StudyRecord{
			Pattern:  pattern.ID,
			Activity: models.ActivityNote,
			At:       note.Created,
		}
		if err := m.recorder.RecordStudy(record); err != nil {
			return "", fmt.Errorf("recording note activity: %w", err)
		}
	}
	if m.events != nil {
		_ = m.events.LogEvent("note.added", map[string]any{
			"pattern": string(pattern.ID),
			"note_id": id,
		})
	}
	return id, nil
}

// GetNote returns a single note by ID.
func (m *noteManager) GetNote(id string) (*models.Note, error) {
	return m.store.GetNote(id)
}

// ListNotes returns the notes for one pattern, or all notes when
// patternID is empty.
func (m *noteManager) ListNotes(patternID string) ([]models.Note, error) {
	if patternID == "" {
		return m.store.GetAllNotes()
	}
	pattern, err := m.catalog.Get(patternID)
	if err != nil {
		return nil, err
	}
	return m.store.QueryByPattern(pattern.ID)
}

// QueryByTags returns notes carrying any of the given tags.
func (m *noteManager) QueryByTags(tags []string) ([]models.Note, error) {
	return m.store.QueryByTags(tags)
}

// Search searches note text, tags, and pattern IDs.
func (m *noteManager) Search(query string) ([]models.Note, error) {
	return m.store.Search(query)
}
