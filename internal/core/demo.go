package core

import (
	"fmt"
	"io"
	"time"

	"github.com/hferraz/patternbook/pkg/models"
)

// StudyRecorder appends records to the study log. Implemented by the
// storage layer and adapted in app wiring.
type StudyRecorder interface {
	RecordStudy(record models.StudyRecord) error
}

// EventLogger writes structured events. Implemented by the observability
// layer and adapted in app wiring; may be absent.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// DemoRunner resolves and runs pattern demos.
type DemoRunner interface {
	Run(id string, w io.Writer) error
}

type demoRunner struct {
	catalog  Catalog
	recorder StudyRecorder
	events   EventLogger
}

// NewDemoRunner creates a DemoRunner. recorder and events may be nil, in
// which case runs are not recorded.
func NewDemoRunner(catalog Catalog, recorder StudyRecorder, events EventLogger) DemoRunner {
	return &demoRunner{catalog: catalog, recorder: recorder, events: events}
}

// Run looks up the pattern, executes its demo writing the transcript to w,
// and records the run in the study log and event log.
func (r *demoRunner) Run(id string, w io.Writer) error {
	pattern, err := r.catalog.Get(id)
	if err != nil {
		return err
	}

	demo, err := r.catalog.DemoFunc(pattern.ID)
	if err != nil {
		return err
	}

	demo(w)

	if r.recorder != nil {
		record := models.StudyRecord{
			Pattern:  pattern.ID,
			Activity: models.ActivityDemo,
			At:       time.Now().UTC(),
		}
		if err := r.recorder.RecordStudy(record); err != nil {
			return fmt.Errorf("recording demo run: %w", err)
		}
	}
	if r.events != nil {
		_ = r.events.LogEvent("demo.run", map[string]any{"pattern": string(pattern.ID)})
	}
	return nil
}
