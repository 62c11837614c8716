// Package storage contains the file-backed persistence layer for patternbook:
// the personal note store and the study log, both YAML files under the
// notebook base path.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hferraz/patternbook/pkg/models"
	"gopkg.in/yaml.v3"
)

// NoteStoreManager defines the interface for managing personal pattern
// notes under notebook/notes/.
type NoteStoreManager interface {
	AddNote(note models.Note) (string, error)
	GetNote(id string) (*models.Note, error)
	GetAllNotes() ([]models.Note, error)
	QueryByPattern(pattern models.PatternID) ([]models.Note, error)
	QueryByTags(tags []string) ([]models.Note, error)
	Search(query string) ([]models.Note, error)
	Load() error
	Save() error
}

type fileNoteStore struct {
	basePath string
	index    models.NoteIndex
}

// NewNoteStoreManager creates a NoteStoreManager backed by a YAML index
// under notebook/notes/ in the given base directory.
func NewNoteStoreManager(basePath string) NoteStoreManager {
	return &fileNoteStore{
		basePath: basePath,
		index: models.NoteIndex{
			Version: "1.0",
			Notes:   nil,
		},
	}
}

func (s *fileNoteStore) notesDir() string {
	return filepath.Join(s.basePath, "notebook", "notes")
}

func (s *fileNoteStore) indexPath() string {
	return filepath.Join(s.notesDir(), "index.yaml")
}

// AddNote stores a note. The note must have an ID already assigned and a
// non-empty pattern and text.
func (s *fileNoteStore) AddNote(note models.Note) (string, error) {
	if note.ID == "" {
		return "", fmt.Errorf("adding note: ID must not be empty")
	}
	if note.Pattern == "" {
		return "", fmt.Errorf("adding note: pattern must not be empty")
	}
	if strings.TrimSpace(note.Text) == "" {
		return "", fmt.Errorf("adding note: text must not be empty")
	}

	for _, existing := range s.index.Notes {
		if existing.ID == note.ID {
			return "", fmt.Errorf("adding note: duplicate ID %s", note.ID)
		}
	}

	s.index.Notes = append(s.index.Notes, note)
	if err := s.Save(); err != nil {
		return "", fmt.Errorf("adding note: %w", err)
	}
	return note.ID, nil
}

// GetNote returns the note with the given ID.
func (s *fileNoteStore) GetNote(id string) (*models.Note, error) {
	for _, note := range s.index.Notes {
		if note.ID == id {
			n := note
			return &n, nil
		}
	}
	return nil, fmt.Errorf("note %s not found", id)
}

// GetAllNotes returns all notes, newest first.
func (s *fileNoteStore) GetAllNotes() ([]models.Note, error) {
	notes := make([]models.Note, len(s.index.Notes))
	copy(notes, s.index.Notes)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Created.After(notes[j].Created)
	})
	return notes, nil
}

// QueryByPattern returns all notes attached to the given pattern.
func (s *fileNoteStore) QueryByPattern(pattern models.PatternID) ([]models.Note, error) {
	var result []models.Note
	for _, note := range s.index.Notes {
		if note.Pattern == pattern {
			result = append(result, note)
		}
	}
	return result, nil
}

// QueryByTags returns notes carrying at least one of the given tags.
func (s *fileNoteStore) QueryByTags(tags []string) ([]models.Note, error) {
	want := make(map[string]bool, len(tags))
	for _, tag := range tags {
		want[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	var result []models.Note
	for _, note := range s.index.Notes {
		for _, tag := range note.Tags {
			if want[strings.ToLower(tag)] {
				result = append(result, note)
				break
			}
		}
	}
	return result, nil
}

// Search matches the query case-insensitively against note text, tags,
// and pattern IDs.
func (s *fileNoteStore) Search(query string) ([]models.Note, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var result []models.Note
	for _, note := range s.index.Notes {
		if noteMatches(note, q) {
			result = append(result, note)
		}
	}
	return result, nil
}

func noteMatches(note models.Note, q string) bool {
	if strings.Contains(strings.ToLower(note.Text), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(note.Pattern)), q) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Load reads the note index from disk. A missing index file leaves the
// store empty.
func (s *fileNoteStore) Load() error {
	if err := loadYAML(s.indexPath(), &s.index); err != nil {
		return fmt.Errorf("loading note index: %w", err)
	}
	if s.index.Version == "" {
		s.index.Version = "1.0"
	}
	return nil
}

// Save persists the note index to disk.
func (s *fileNoteStore) Save() error {
	if err := os.MkdirAll(s.notesDir(), 0o755); err != nil {
		return fmt.Errorf("saving note store: creating directory: %w", err)
	}
	if err := saveYAML(s.indexPath(), &s.index); err != nil {
		return fmt.Errorf("saving note index: %w", err)
	}
	return nil
}

func loadYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Missing files are initialized to zero values.
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func saveYAML(path string, source interface{}) error {
	data, err := yaml.Marshal(source)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
