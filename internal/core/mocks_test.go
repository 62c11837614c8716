package core

import (
	"fmt"

	"github.com/hferraz/patternbook/pkg/models"
)

// memStudyLog implements StudyRecorder and StudyReader in memory.
type memStudyLog struct {
	records []models.StudyRecord
	failing bool
}

func (m *memStudyLog) RecordStudy(record models.StudyRecord) error {
	if m.failing {
		return fmt.Errorf("study log unavailable")
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memStudyLog) StudyRecords(filter models.StudyFilter) ([]models.StudyRecord, error) {
	if m.failing {
		return nil, fmt.Errorf("study log unavailable")
	}
	var result []models.StudyRecord
	for _, r := range m.records {
		if filter.Pattern != "" && r.Pattern != filter.Pattern {
			continue
		}
		if filter.Activity != "" && r.Activity != filter.Activity {
			continue
		}
		if filter.Since != nil && r.At.Before(*filter.Since) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// memEventLogger implements EventLogger in memory.
type memEventLogger struct {
	events []loggedEvent
}

type loggedEvent struct {
	eventType string
	data      map[string]any
}

func (m *memEventLogger) LogEvent(eventType string, data map[string]any) error {
	m.events = append(m.events, loggedEvent{eventType: eventType, data: data})
	return nil
}

// memNoteStore implements NoteStoreAccess in memory.
type memNoteStore struct {
	notes []models.Note
}

func (m *memNoteStore) AddNote(note models.Note) (string, error) {
	for _, existing := range m.notes {
		if existing.ID == note.ID {
			return "", fmt.Errorf("duplicate ID %s", note.ID)
		}
	}
	m.notes = append(m.notes, note)
	return note.ID, nil
}

func (m *memNoteStore) GetNote(id string) (*models.Note, error) {
	for _, n := range m.notes {
		if n.ID == id {
			note := n
			return &note, nil
		}
	}
	return nil, fmt.Errorf("note %s not found", id)
}

func (m *memNoteStore) GetAllNotes() ([]models.Note, error) {
	return append([]models.Note(nil), m.notes...), nil
}

func (m *memNoteStore) QueryByPattern(pattern models.PatternID) ([]models.Note, error) {
	var result []models.Note
	for _, n := range m.notes {
		if n.Pattern == pattern {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *memNoteStore) QueryByTags(tags []string) ([]models.Note, error) {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var result []models.Note
	for _, n := range m.notes {
		for _, tag := range n.Tags {
			if want[tag] {
				result = append(result, n)
				break
			}
		}
	}
	return result, nil
}

func (m *memNoteStore) Search(query string) ([]models.Note, error) {
	var result []models.Note
	for _, n := range m.notes {
		if query != "" && len(n.Text) > 0 {
			result = append(result, n)
		}
	}
	return result, nil
}

// seqIDGen implements NoteIDGenerator with an in-memory counter.
type seqIDGen struct {
	counter int
}

func (g *seqIDGen) GenerateNoteID() (string, error) {
	g.counter++
	return fmt.Sprintf("N-%05d", g.counter), nil
}
