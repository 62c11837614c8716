package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/internal/observability"
	"github.com/hferraz/patternbook/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- Fake implementations ---

// fakeDemoRunner writes a fixed transcript.
type fakeDemoRunner struct {
	transcript string
	err        error
}

func (f *fakeDemoRunner) Run(id string, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, _ = fmt.Fprint(w, f.transcript)
	return nil
}

// fakeProgressTracker returns canned progress rows.
type fakeProgressTracker struct {
	progress []models.PatternProgress
	err      error
}

func (f *fakeProgressTracker) Progress(pattern models.PatternID) (*models.PatternProgress, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeProgressTracker) AllProgress() ([]models.PatternProgress, error) {
	return f.progress, f.err
}

// fakeQuizEngine returns a single fixed question.
type fakeQuizEngine struct {
	question models.QuizQuestion
	err      error
}

func (f *fakeQuizEngine) Questions(id string, n int) (models.PatternID, []models.QuizQuestion, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return models.PatternID(id), []models.QuizQuestion{f.question}, nil
}

func (f *fakeQuizEngine) Grade(pattern models.PatternID, questions []models.QuizQuestion, answers []int) (*models.QuizResult, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeMetricsCalculator struct {
	metrics *observability.Metrics
}

func (f *fakeMetricsCalculator) Calculate(_ time.Time) (*observability.Metrics, error) {
	return f.metrics, nil
}

// --- Test helpers ---

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(
		core.NewCatalog(),
		&fakeDemoRunner{transcript: "Quack\n"},
		&fakeQuizEngine{question: models.QuizQuestion{
			Pattern: models.PatternStrategy,
			Prompt:  "Which principle does the pattern follow?",
			Choices: []string{"Inheritance everywhere", "Composition over inheritance"},
			Answer:  1,
		}},
		&fakeProgressTracker{},
		nil,
		"test",
	)
}

// callTool is a helper that connects a client to the server and calls a tool.
func callTool(t *testing.T, srv *Server, toolName string, args map[string]any) *gomcp.CallToolResult {
	t.Helper()

	ctx := context.Background()
	client := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)

	t1, t2 := gomcp.NewInMemoryTransports()

	// Connect server (non-blocking).
	go func() {
		_ = srv.MCPServer().Run(ctx, t1)
	}()

	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &gomcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("call tool %s: %v", toolName, err)
	}

	return result
}

// decodeOutput unmarshals a tool result into out, preferring the structured
// content when present.
func decodeOutput(t *testing.T, result *gomcp.CallToolResult, out any) {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		if err != nil {
			t.Fatalf("marshalling structured content: %v", err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("unmarshalling structured content: %v", err)
		}
		return
	}

	text := extractText(result)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		t.Fatalf("unmarshalling tool output: %v (text was: %s)", err, text)
	}
}

func extractText(result *gomcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(*gomcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- Tests ---

func TestGetPattern(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "get_pattern", map[string]any{"pattern": "strategy"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out patternOutput
	decodeOutput(t, result, &out)

	if out.ID != "strategy" {
		t.Errorf("expected pattern ID strategy, got %s", out.ID)
	}
	if out.Category != "behavioral" {
		t.Errorf("expected category behavioral, got %s", out.Category)
	}
	if len(out.Participants) == 0 || len(out.KeyPoints) == 0 {
		t.Error("expected participants and key points on the card")
	}
}

func TestGetPatternByAlias(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "get_pattern", map[string]any{"pattern": "factory"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out patternOutput
	decodeOutput(t, result, &out)
	if out.ID != "factory-method" {
		t.Errorf("alias resolved to %s, want factory-method", out.ID)
	}
}

func TestGetPatternNotFound(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "get_pattern", map[string]any{"pattern": "flyweight"})
	if !result.IsError {
		t.Fatal("expected error result for unknown pattern")
	}
	if extractText(result) == "" {
		t.Fatal("expected error message in result content")
	}
}

func TestListPatterns(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "list_patterns", map[string]any{})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out listPatternsOutput
	decodeOutput(t, result, &out)

	if out.Count != 5 {
		t.Errorf("expected 5 patterns, got %d", out.Count)
	}
}

func TestListPatternsByCategory(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "list_patterns", map[string]any{"category": "creational"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out listPatternsOutput
	decodeOutput(t, result, &out)

	if out.Count != 2 {
		t.Errorf("expected 2 creational patterns, got %d", out.Count)
	}
	for _, p := range out.Patterns {
		if p.Category != "creational" {
			t.Errorf("unexpected category %s in filtered list", p.Category)
		}
	}
}

func TestListPatternsUnknownCategory(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "list_patterns", map[string]any{"category": "functional"})
	if !result.IsError {
		t.Fatal("expected error result for unknown category")
	}
}

func TestRunDemo(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "run_demo", map[string]any{"pattern": "strategy"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out runDemoOutput
	decodeOutput(t, result, &out)

	if !strings.Contains(out.Transcript, "Quack") {
		t.Errorf("transcript = %q", out.Transcript)
	}
}

func TestRunDemoError(t *testing.T) {
	srv := NewServer(core.NewCatalog(), &fakeDemoRunner{err: fmt.Errorf("pattern %q not found", "flyweight")}, &fakeQuizEngine{}, &fakeProgressTracker{}, nil, "test")

	result := callTool(t, srv, "run_demo", map[string]any{"pattern": "flyweight"})
	if !result.IsError {
		t.Fatal("expected error result from failing demo runner")
	}
}

func TestGetProgress(t *testing.T) {
	last := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tracker := &fakeProgressTracker{progress: []models.PatternProgress{
		{Pattern: models.PatternStrategy, Mastery: models.MasteryMastered, TimesStudied: 6, DemosRun: 2, QuizzesTaken: 3, BestScorePct: 100, LastStudied: &last},
		{Pattern: models.PatternObserver, Mastery: models.MasteryUntouched},
	}}
	srv := NewServer(core.NewCatalog(), &fakeDemoRunner{}, &fakeQuizEngine{}, tracker, nil, "test")

	result := callTool(t, srv, "get_progress", map[string]any{})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out getProgressOutput
	decodeOutput(t, result, &out)

	if len(out.Progress) != 2 {
		t.Fatalf("expected 2 progress rows, got %d", len(out.Progress))
	}
	if out.Progress[0].Mastery != "mastered" || out.Progress[0].BestScorePct != 100 {
		t.Errorf("first row = %+v", out.Progress[0])
	}
	if out.Progress[0].LastStudied == "" {
		t.Error("expected last_studied timestamp for studied pattern")
	}
	if out.Progress[1].LastStudied != "" {
		t.Error("expected empty last_studied for untouched pattern")
	}
}

func TestQuizQuestion(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "quiz_question", map[string]any{"pattern": "strategy"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out quizQuestionOutput
	decodeOutput(t, result, &out)

	if out.Pattern != "strategy" {
		t.Errorf("pattern = %s", out.Pattern)
	}
	if len(out.Choices) != 2 || out.Answer != 1 {
		t.Errorf("question = %+v", out)
	}
}

func TestGetMetricsWithoutCalculator(t *testing.T) {
	srv := newTestServer(t)

	result := callTool(t, srv, "get_metrics", map[string]any{})
	if !result.IsError {
		t.Fatal("expected error result when metrics calculator is nil")
	}
}

func TestGetMetrics(t *testing.T) {
	calc := &fakeMetricsCalculator{metrics: &observability.Metrics{
		PatternsViewed:  7,
		DemosRun:        3,
		QuizzesTaken:    2,
		AvgQuizScorePct: 84,
		EventCount:      12,
		ViewsByPattern:  map[string]int{"observer": 4},
	}}
	srv := NewServer(core.NewCatalog(), &fakeDemoRunner{}, &fakeQuizEngine{}, &fakeProgressTracker{}, calc, "test")

	result := callTool(t, srv, "get_metrics", map[string]any{"since": "30d"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractText(result))
	}

	var out metricsOutput
	decodeOutput(t, result, &out)

	if out.PatternsViewed != 7 || out.AvgQuizScorePct != 84 {
		t.Errorf("metrics = %+v", out)
	}
	if out.ViewsByPattern["observer"] != 4 {
		t.Errorf("views by pattern = %v", out.ViewsByPattern)
	}
}

func TestGetMetricsBadSince(t *testing.T) {
	calc := &fakeMetricsCalculator{metrics: &observability.Metrics{}}
	srv := NewServer(core.NewCatalog(), &fakeDemoRunner{}, &fakeQuizEngine{}, &fakeProgressTracker{}, calc, "test")

	result := callTool(t, srv, "get_metrics", map[string]any{"since": "7w"})
	if !result.IsError {
		t.Fatal("expected error result for bad since duration")
	}
}

func TestParseSince(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"7d", false},
		{"24h", false},
		{"x", true},
		{"7w", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseSince(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseSince(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
