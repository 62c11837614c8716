package models

// GlobalConfig holds notebook-wide settings read from .pbconfig. The file
// uses nested keys (quiz.length, defaults.category, ...) which the config
// manager maps onto these fields; missing keys fall back to defaults in core.
type GlobalConfig struct {
	DefaultCategory string
	QuizLength      int
	NoteIDPrefix    string
	NoteIDPadWidth  int
	Review          ReviewConfig
	Notifications   NotificationConfig
}

// ReviewConfig holds spaced-repetition thresholds for the review planner.
type ReviewConfig struct {
	// IntervalDays is how long a pattern may go unreviewed before it is due.
	IntervalDays int
	// MasteredIntervalDays is the longer window applied to mastered patterns.
	MasteredIntervalDays int
}

// NotificationConfig configures outbound review reminders.
type NotificationConfig struct {
	Enabled    bool
	WebhookURL string
}
