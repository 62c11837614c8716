package models

import "time"

// QuizQuestion is a multiple-choice question about one pattern.
type QuizQuestion struct {
	Pattern PatternID
	Prompt  string
	Choices []string
	// Answer is the index into Choices of the correct answer.
	Answer int
}

// QuizResult records the outcome of one graded quiz session.
type QuizResult struct {
	Pattern  PatternID `yaml:"pattern"`
	Asked    int       `yaml:"asked"`
	Correct  int       `yaml:"correct"`
	TakenAt  time.Time `yaml:"taken_at"`
	ScorePct int       `yaml:"score_pct"`
}
