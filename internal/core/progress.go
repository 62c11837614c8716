package core

import (
	"fmt"

	"github.com/hferraz/patternbook/pkg/models"
)

// StudyReader reads study records. Implemented by the storage layer and
// adapted in app wiring.
type StudyReader interface {
	StudyRecords(filter models.StudyFilter) ([]models.StudyRecord, error)
}

// ProgressTracker derives per-pattern study progress from the study log.
type ProgressTracker interface {
	Progress(pattern models.PatternID) (*models.PatternProgress, error)
	AllProgress() ([]models.PatternProgress, error)
}

type progressTracker struct {
	catalog Catalog
	reader  StudyReader
}

// NewProgressTracker creates a ProgressTracker over the given study log.
func NewProgressTracker(catalog Catalog, reader StudyReader) ProgressTracker {
	return &progressTracker{catalog: catalog, reader: reader}
}

// Progress derives the study state of one pattern.
func (pt *progressTracker) Progress(pattern models.PatternID) (*models.PatternProgress, error) {
	records, err := pt.reader.StudyRecords(models.StudyFilter{Pattern: pattern})
	if err != nil {
		return nil, fmt.Errorf("reading study records for %s: %w", pattern, err)
	}
	progress := deriveProgress(pattern, records)
	return &progress, nil
}

// AllProgress derives the study state of every catalog pattern.
func (pt *progressTracker) AllProgress() ([]models.PatternProgress, error) {
	records, err := pt.reader.StudyRecords(models.StudyFilter{})
	if err != nil {
		return nil, fmt.Errorf("reading study records: %w", err)
	}

	byPattern := make(map[models.PatternID][]models.StudyRecord)
	for _, r := range records {
		byPattern[r.Pattern] = append(byPattern[r.Pattern], r)
	}

	var result []models.PatternProgress
	for _, p := range pt.catalog.All() {
		result = append(result, deriveProgress(p.ID, byPattern[p.ID]))
	}
	return result, nil
}

// deriveProgress folds a pattern's study records into its progress.
// Mastery: untouched with no records; learning once any activity exists;
// practiced after a demo and a quiz; mastered once the best quiz score
// reaches 90%.
func deriveProgress(pattern models.PatternID, records []models.StudyRecord) models.PatternProgress {
	progress := models.PatternProgress{
		Pattern: pattern,
		Mastery: models.MasteryUntouched,
	}

	for _, r := range records {
		progress.TimesStudied++
		switch r.Activity {
		case models.ActivityDemo:
			progress.DemosRun++
		case models.ActivityQuiz:
			progress.QuizzesTaken++
			if r.ScorePct > progress.BestScorePct {
				progress.BestScorePct = r.ScorePct
			}
		}
		if progress.LastStudied == nil || r.At.After(*progress.LastStudied) {
			t := r.At
			progress.LastStudied = &t
		}
	}

	switch {
	case progress.TimesStudied == 0:
	case progress.QuizzesTaken > 0 && progress.BestScorePct >= 90:
		progress.Mastery = models.MasteryMastered
	case progress.DemosRun > 0 && progress.QuizzesTaken > 0:
		progress.Mastery = models.MasteryPracticed
	default:
		progress.Mastery = models.MasteryLearning
	}

	return progress
}
