package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fileNoteIDGenerator implements NoteIDGenerator by persisting a counter
// in a .note_counter file on disk.
type fileNoteIDGenerator struct {
	basePath string
	prefix   string
	padWidth int
}

// NewNoteIDGenerator creates a NoteIDGenerator that stores its counter in
// a .note_counter file within basePath. padWidth controls the zero-padding
// width of the numeric portion. Use 0 for no padding (e.g., N-1).
func NewNoteIDGenerator(basePath string, prefix string, padWidth int) NoteIDGenerator {
	return &fileNoteIDGenerator{
		basePath: basePath,
		prefix:   prefix,
		padWidth: padWidth,
	}
}

// GenerateNoteID reads the current counter from the .note_counter file,
// increments it, writes it back, and returns the formatted ID.
// If the counter file does not exist, the counter starts from 1.
// Format: {prefix}-{counter:05d} (e.g., N-00001).
func (g *fileNoteIDGenerator) GenerateNoteID() (string, error) {
	counterPath := filepath.Join(g.basePath, ".note_counter")

	counter := 0
	data, err := os.ReadFile(counterPath)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("reading note counter file: %w", err)
	}
	if err == nil {
		trimmed := strings.TrimSpace(string(data))
		counter, err = strconv.Atoi(trimmed)
		if err != nil {
			return "", fmt.Errorf("parsing note counter %q: %w", trimmed, err)
		}
	}

	counter++

	if err := os.MkdirAll(g.basePath, 0o750); err != nil {
		return "", fmt.Errorf("creating base path for note counter: %w", err)
	}

	if err := os.WriteFile(counterPath, []byte(strconv.Itoa(counter)), 0o600); err != nil {
		return "", fmt.Errorf("writing note counter file: %w", err)
	}

	if g.padWidth > 0 {
		return fmt.Sprintf("%s-%0*d", g.prefix, g.padWidth, counter), nil
	}
	return fmt.Sprintf("%s-%d", g.prefix, counter), nil
}
