// Package internal provides the App struct that wires all components of
// patternbook together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hferraz/patternbook/internal/cli"
	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/internal/observability"
	"github.com/hferraz/patternbook/internal/storage"
	"github.com/hferraz/patternbook/pkg/models"
)

// App holds all service dependencies for patternbook.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	NoteStore storage.NoteStoreManager
	StudyLog  storage.StudyLogManager

	// Core services
	Catalog  core.Catalog
	Demos    core.DemoRunner
	Quizzes  core.QuizEngine
	Notes    core.NoteManager
	Progress core.ProgressTracker
	Reviews  core.ReviewPlanner
	IDGen    core.NoteIDGenerator

	// Observability
	EventLog    observability.EventLog
	AlertEngine observability.ReviewAlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
}

// NewApp creates and wires all components of patternbook. basePath is the
// root directory where all data is stored (typically the directory
// containing .pbconfig).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		// Use defaults if the config file is unreadable.
		globalCfg = &models.GlobalConfig{
			QuizLength:     3,
			NoteIDPrefix:   "N",
			NoteIDPadWidth: 5,
		}
	}

	// --- Storage layer ---
	app.NoteStore = storage.NewNoteStoreManager(basePath)
	_ = app.NoteStore.Load() // Non-fatal: empty store on first use.
	app.StudyLog = storage.NewStudyLogManager(basePath)
	_ = app.StudyLog.Load() // Non-fatal: empty log on first use.

	// --- Catalog ---
	app.Catalog = core.NewCatalog()

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".pb_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if log can't be created.
		app.EventLog = nil
	}
	if app.EventLog != nil {
		thresholds := observability.DefaultReviewThresholds()
		if globalCfg.Review.IntervalDays > 0 {
			thresholds.IntervalDays = globalCfg.Review.IntervalDays
		}
		patternIDs := make([]string, 0, len(app.Catalog.All()))
		for _, p := range app.Catalog.All() {
			patternIDs = append(patternIDs, string(p.ID))
		}
		app.AlertEngine = observability.NewReviewAlertEngine(app.EventLog, patternIDs, thresholds)
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}
	if globalCfg.Notifications.Enabled && globalCfg.Notifications.WebhookURL != "" {
		app.Notifier = observability.NewWebhookNotifier(globalCfg.Notifications.WebhookURL)
	}

	// --- Core services ---
	prefix := globalCfg.NoteIDPrefix
	if prefix == "" {
		prefix = "N"
	}
	app.IDGen = core.NewNoteIDGenerator(basePath, prefix, globalCfg.NoteIDPadWidth)

	recorder := &studyLogAdapter{mgr: app.StudyLog}
	var events core.EventLogger
	if app.EventLog != nil {
		events = &eventLogAdapter{log: app.EventLog}
	}

	app.Demos = core.NewDemoRunner(app.Catalog, recorder, events)
	app.Quizzes = core.NewQuizEngine(app.Catalog, recorder, events)
	app.Notes = core.NewNoteManager(app.Catalog, app.NoteStore, app.IDGen, recorder, events)
	app.Progress = core.NewProgressTracker(app.Catalog, recorder)
	app.Reviews = core.NewReviewPlanner(app.Catalog, app.Progress, recorder, events, globalCfg.Review)

	// --- Wire CLI package-level variables ---
	cli.Catalog = app.Catalog
	cli.Demos = app.Demos
	cli.Quizzes = app.Quizzes
	cli.Notes = app.Notes
	cli.Progress = app.Progress
	cli.Reviews = app.Reviews
	cli.StudyRec = recorder
	cli.DefaultQuizLength = globalCfg.QuizLength
	cli.DefaultCategory = globalCfg.DefaultCategory

	cli.EventLog = app.EventLog
	cli.AlertEngine = app.AlertEngine
	cli.MetricsCalc = app.MetricsCalc
	cli.Notifier = app.Notifier

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the patternbook data
// directory. It checks the PB_HOME env var, then walks up from the current
// directory looking for .pbconfig, and falls back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("PB_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".pbconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// studyLogAdapter adapts storage.StudyLogManager to core.StudyRecorder and
// core.StudyReader.
type studyLogAdapter struct {
	mgr storage.StudyLogManager
}

func (a *studyLogAdapter) RecordStudy(record models.StudyRecord) error {
	return a.mgr.Append(record)
}

func (a *studyLogAdapter) StudyRecords(filter models.StudyFilter) ([]models.StudyRecord, error) {
	return a.mgr.GetRecords(filter)
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
