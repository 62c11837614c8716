// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the notebook as MCP tools for AI coding assistants.
package mcp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/internal/observability"
	"github.com/hferraz/patternbook/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps notebook services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	catalog     core.Catalog
	demos       core.DemoRunner
	quizzes     core.QuizEngine
	progress    core.ProgressTracker
	metricsCalc observability.MetricsCalculator
}

// NewServer creates a new MCP server with the given notebook service
// dependencies. metricsCalc may be nil if observability is disabled.
func NewServer(catalog core.Catalog, demos core.DemoRunner, quizzes core.QuizEngine, progress core.ProgressTracker, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		catalog:     catalog,
		demos:       demos,
		quizzes:     quizzes,
		progress:    progress,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "patternbook", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type getPatternInput struct {
	Pattern string `json:"pattern" jsonschema:"required,the pattern ID or alias (e.g. strategy, observer, decorator, factory-method, singleton)"`
}

type patternOutput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Intent       string   `json:"intent"`
	Problem      string   `json:"problem"`
	Solution     string   `json:"solution"`
	Participants []string `json:"participants"`
	KeyPoints    []string `json:"key_points"`
	DemoName     string   `json:"demo_name"`
}

type listPatternsInput struct {
	Category string `json:"category,omitempty" jsonschema:"filter patterns by category (behavioral, structural, creational)"`
}

type listPatternsOutput struct {
	Patterns []patternOutput `json:"patterns"`
	Count    int             `json:"count"`
}

type runDemoInput struct {
	Pattern string `json:"pattern" jsonschema:"required,the pattern whose demo to run"`
}

type runDemoOutput struct {
	Pattern    string `json:"pattern"`
	Transcript string `json:"transcript"`
}

type getProgressInput struct{}

type progressOutput struct {
	Pattern      string `json:"pattern"`
	Mastery      string `json:"mastery"`
	TimesStudied int    `json:"times_studied"`
	DemosRun     int    `json:"demos_run"`
	QuizzesTaken int    `json:"quizzes_taken"`
	BestScorePct int    `json:"best_score_pct"`
	LastStudied  string `json:"last_studied,omitempty"`
}

type getProgressOutput struct {
	Progress []progressOutput `json:"progress"`
}

type quizQuestionInput struct {
	Pattern string `json:"pattern" jsonschema:"required,the pattern to draw a question for"`
}

type quizQuestionOutput struct {
	Pattern string   `json:"pattern"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer" jsonschema:"zero-based index of the correct choice"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	PatternsViewed  int            `json:"patterns_viewed"`
	DemosRun        int            `json:"demos_run"`
	QuizzesTaken    int            `json:"quizzes_taken"`
	NotesAdded      int            `json:"notes_added"`
	ReviewsDone     int            `json:"reviews_done"`
	ViewsByPattern  map[string]int `json:"views_by_pattern"`
	AvgQuizScorePct int            `json:"avg_quiz_score_pct"`
	EventCount      int            `json:"event_count"`
	OldestEvent     string         `json:"oldest_event,omitempty"`
	NewestEvent     string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_pattern",
		Description: "Get a pattern's reference card by ID or alias. Returns intent, problem, solution, participants, and key points.",
	}, s.handleGetPattern)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_patterns",
		Description: "List the catalog's patterns with an optional category filter (behavioral, structural, creational).",
	}, s.handleListPatterns)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "run_demo",
		Description: "Run a pattern's toy demo and return its transcript. The run is recorded as study activity.",
	}, s.handleRunDemo)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_progress",
		Description: "Get per-pattern study progress: mastery level, demo runs, quizzes taken, and best score.",
	}, s.handleGetProgress)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "quiz_question",
		Description: "Draw one random quiz question for a pattern, including the correct answer index.",
	}, s.handleQuizQuestion)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get aggregated study metrics from the event log: views, demos, quizzes, notes, and reviews.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleGetPattern(_ context.Context, _ *gomcp.CallToolRequest, input getPatternInput) (*gomcp.CallToolResult, patternOutput, error) {
	if input.Pattern == "" {
		return errorResult("pattern is required"), patternOutput{}, nil
	}

	pattern, err := s.catalog.Get(input.Pattern)
	if err != nil {
		return errorResult(fmt.Sprintf("getting pattern %s: %s", input.Pattern, err)), patternOutput{}, nil
	}

	return nil, patternToOutput(pattern), nil
}

func (s *Server) handleListPatterns(_ context.Context, _ *gomcp.CallToolRequest, input listPatternsInput) (*gomcp.CallToolResult, listPatternsOutput, error) {
	var patterns []models.Pattern
	if input.Category != "" {
		patterns = s.catalog.ByCategory(models.Category(input.Category))
		if len(patterns) == 0 {
			return errorResult(fmt.Sprintf("unknown category %q: must be one of behavioral, structural, creational", input.Category)), listPatternsOutput{}, nil
		}
	} else {
		patterns = s.catalog.All()
	}

	out := listPatternsOutput{
		Patterns: make([]patternOutput, len(patterns)),
		Count:    len(patterns),
	}
	for i := range patterns {
		out.Patterns[i] = patternToOutput(&patterns[i])
	}
	return nil, out, nil
}

func (s *Server) handleRunDemo(_ context.Context, _ *gomcp.CallToolRequest, input runDemoInput) (*gomcp.CallToolResult, runDemoOutput, error) {
	if input.Pattern == "" {
		return errorResult("pattern is required"), runDemoOutput{}, nil
	}

	var transcript bytes.Buffer
	if err := s.demos.Run(input.Pattern, &transcript); err != nil {
		return errorResult(fmt.Sprintf("running demo for %s: %s", input.Pattern, err)), runDemoOutput{}, nil
	}

	out := runDemoOutput{
		Pattern:    input.Pattern,
		Transcript: transcript.String(),
	}
	return nil, out, nil
}

func (s *Server) handleGetProgress(_ context.Context, _ *gomcp.CallToolRequest, _ getProgressInput) (*gomcp.CallToolResult, getProgressOutput, error) {
	all, err := s.progress.AllProgress()
	if err != nil {
		return errorResult(fmt.Sprintf("deriving progress: %s", err)), getProgressOutput{}, nil
	}

	out := getProgressOutput{
		Progress: make([]progressOutput, len(all)),
	}
	for i, p := range all {
		entry := progressOutput{
			Pattern:      string(p.Pattern),
			Mastery:      string(p.Mastery),
			TimesStudied: p.TimesStudied,
			DemosRun:     p.DemosRun,
			QuizzesTaken: p.QuizzesTaken,
			BestScorePct: p.BestScorePct,
		}
		if p.LastStudied != nil {
			entry.LastStudied = p.LastStudied.Format(time.RFC3339)
		}
		out.Progress[i] = entry
	}
	return nil, out, nil
}

func (s *Server) handleQuizQuestion(_ context.Context, _ *gomcp.CallToolRequest, input quizQuestionInput) (*gomcp.CallToolResult, quizQuestionOutput, error) {
	if input.Pattern == "" {
		return errorResult("pattern is required"), quizQuestionOutput{}, nil
	}

	pattern, questions, err := s.quizzes.Questions(input.Pattern, 1)
	if err != nil {
		return errorResult(fmt.Sprintf("drawing quiz question for %s: %s", input.Pattern, err)), quizQuestionOutput{}, nil
	}

	q := questions[0]
	out := quizQuestionOutput{
		Pattern: string(pattern),
		Prompt:  q.Prompt,
		Choices: q.Choices,
		Answer:  q.Answer,
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		PatternsViewed:  metrics.PatternsViewed,
		DemosRun:        metrics.DemosRun,
		QuizzesTaken:    metrics.QuizzesTaken,
		NotesAdded:      metrics.NotesAdded,
		ReviewsDone:     metrics.ReviewsDone,
		ViewsByPattern:  metrics.ViewsByPattern,
		AvgQuizScorePct: metrics.AvgQuizScorePct,
		EventCount:      metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

func patternToOutput(p *models.Pattern) patternOutput {
	return patternOutput{
		ID:           string(p.ID),
		Name:         p.Name,
		Category:     string(p.Category),
		Intent:       p.Intent,
		Problem:      p.Problem,
		Solution:     p.Solution,
		Participants: p.Participants,
		KeyPoints:    p.KeyPoints,
		DemoName:     p.DemoName,
	}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{
		ViewsByPattern: make(map[string]int),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
