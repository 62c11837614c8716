package models

import "time"

// StudyActivity names the kind of study interaction that was recorded.
type StudyActivity string

const (
	ActivityViewed StudyActivity = "viewed"
	ActivityDemo   StudyActivity = "demo"
	ActivityQuiz   StudyActivity = "quiz"
	ActivityNote   StudyActivity = "note"
	ActivityReview StudyActivity = "review"
)

// StudyRecord is one entry in the study log: a single interaction with
// one pattern at a point in time.
type StudyRecord struct {
	Pattern  PatternID     `yaml:"pattern"`
	Activity StudyActivity `yaml:"activity"`
	At       time.Time     `yaml:"at"`
	// ScorePct is set only for quiz activities.
	ScorePct int `yaml:"score_pct,omitempty"`
}

// StudyLog is the persisted, append-only study history.
type StudyLog struct {
	Version string        `yaml:"version"`
	Records []StudyRecord `yaml:"records"`
}

// StudyFilter selects study records when reading the log.
type StudyFilter struct {
	Pattern  PatternID
	Activity StudyActivity
	Since    *time.Time
}

// MasteryLevel summarizes how well one pattern is known, derived from the
// study log rather than stored.
type MasteryLevel string

const (
	MasteryUntouched MasteryLevel = "untouched"
	MasteryLearning  MasteryLevel = "learning"
	MasteryPracticed MasteryLevel = "practiced"
	MasteryMastered  MasteryLevel = "mastered"
)

// PatternProgress is the derived study state of one pattern.
type PatternProgress struct {
	Pattern      PatternID
	TimesStudied int
	DemosRun     int
	QuizzesTaken int
	BestScorePct int
	LastStudied  *time.Time
	Mastery      MasteryLevel
}
