package models

import "time"

// Note is a personal annotation attached to a pattern: an insight, a
// question, or a connection to real code the author has seen.
type Note struct {
	ID      string    `yaml:"id"`
	Pattern PatternID `yaml:"pattern"`
	Text    string    `yaml:"text"`
	Tags    []string  `yaml:"tags,omitempty"`
	Created time.Time `yaml:"created"`
}

// NoteIndex is the persisted collection of notes.
type NoteIndex struct {
	Version string `yaml:"version"`
	Notes   []Note `yaml:"notes"`
}
