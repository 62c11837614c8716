package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hferraz/patternbook/pkg/models"
)

// StudyLogManager defines the interface for the append-only study history
// under notebook/.
type StudyLogManager interface {
	Append(record models.StudyRecord) error
	GetRecords(filter models.StudyFilter) ([]models.StudyRecord, error)
	Load() error
	Save() error
}

type fileStudyLog struct {
	basePath string
	log      models.StudyLog
}

// NewStudyLogManager creates a StudyLogManager backed by a YAML file under
// notebook/ in the given base directory.
func NewStudyLogManager(basePath string) StudyLogManager {
	return &fileStudyLog{
		basePath: basePath,
		log: models.StudyLog{
			Version: "1.0",
			Records: nil,
		},
	}
}

func (s *fileStudyLog) notebookDir() string {
	return filepath.Join(s.basePath, "notebook")
}

func (s *fileStudyLog) logPath() string {
	return filepath.Join(s.notebookDir(), "study_log.yaml")
}

// Append adds a record to the log and persists it.
func (s *fileStudyLog) Append(record models.StudyRecord) error {
	if record.Pattern == "" {
		return fmt.Errorf("appending study record: pattern must not be empty")
	}
	if record.Activity == "" {
		return fmt.Errorf("appending study record: activity must not be empty")
	}

	s.log.Records = append(s.log.Records, record)
	if err := s.Save(); err != nil {
		return fmt.Errorf("appending study record: %w", err)
	}
	return nil
}

// GetRecords returns records matching the filter, in append order.
func (s *fileStudyLog) GetRecords(filter models.StudyFilter) ([]models.StudyRecord, error) {
	var result []models.StudyRecord
	for _, r := range s.log.Records {
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

// Load reads the study log from disk. A missing file leaves the log empty.
func (s *fileStudyLog) Load() error {
	if err := loadYAML(s.logPath(), &s.log); err != nil {
		return fmt.Errorf("loading study log: %w", err)
	}
	if s.log.Version == "" {
		s.log.Version = "1.0"
	}
	return nil
}

// Save persists the study log to disk.
func (s *fileStudyLog) Save() error {
	if err := os.MkdirAll(s.notebookDir(), 0o755); err != nil {
		return fmt.Errorf("saving study log: creating directory: %w", err)
	}
	if err := saveYAML(s.logPath(), &s.log); err != nil {
		return fmt.Errorf("saving study log: %w", err)
	}
	return nil
}
