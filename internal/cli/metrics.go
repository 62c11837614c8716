package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	metricsJSON  bool
	metricsSince string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display study metrics",
	Long: `Display aggregated study metrics derived from the event log.

Metrics include card views, demo runs, quizzes taken, notes added,
reviews completed, and the average quiz score.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics calculator not initialized (observability may be disabled)")
		}

		sinceTime, err := parseSinceDuration(metricsSince)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}

		metrics, err := MetricsCalc.Calculate(sinceTime)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		w := cmd.OutOrStdout()
		if metricsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting metrics as JSON: %w", err)
			}
			fmt.Fprintln(w, string(data))
			return nil
		}

		// Table format.
		fmt.Fprintf(w, "Study metrics (since %s)\n\n", sinceTime.Format("2006-01-02"))
		fmt.Fprintf(w, "  %-24s %d\n", "Events recorded:", metrics.EventCount)
		fmt.Fprintf(w, "  %-24s %d\n", "Cards viewed:", metrics.PatternsViewed)
		fmt.Fprintf(w, "  %-24s %d\n", "Demos run:", metrics.DemosRun)
		fmt.Fprintf(w, "  %-24s %d\n", "Quizzes taken:", metrics.QuizzesTaken)
		fmt.Fprintf(w, "  %-24s %d\n", "Notes added:", metrics.NotesAdded)
		fmt.Fprintf(w, "  %-24s %d\n", "Reviews completed:", metrics.ReviewsDone)

		if metrics.QuizzesTaken > 0 {
			fmt.Fprintf(w, "  %-24s %d%%\n", "Avg quiz score:", metrics.AvgQuizScorePct)
		}

		if len(metrics.ViewsByPattern) > 0 {
			fmt.Fprintln(w, "\n  Views by pattern:")
			for pattern, count := range metrics.ViewsByPattern {
				fmt.Fprintf(w, "    %-20s %d\n", pattern+":", count)
			}
		}

		if len(metrics.DemosByPattern) > 0 {
			fmt.Fprintln(w, "\n  Demos by pattern:")
			for pattern, count := range metrics.DemosByPattern {
				fmt.Fprintf(w, "    %-20s %d\n", pattern+":", count)
			}
		}

		if metrics.OldestEvent != nil {
			fmt.Fprintf(w, "\n  %-24s %s\n", "Oldest event:", metrics.OldestEvent.Format(time.RFC3339))
		}
		if metrics.NewestEvent != nil {
			fmt.Fprintf(w, "  %-24s %s\n", "Newest event:", metrics.NewestEvent.Format(time.RFC3339))
		}

		return nil
	},
}

// parseSinceDuration parses a human-friendly duration string like "7d", "30d",
// or "24h" and returns the corresponding time in the past.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Output metrics as JSON")
	metricsCmd.Flags().StringVar(&metricsSince, "since", "7d", "Time window for metrics (e.g. 7d, 30d, 24h)")
	rootCmd.AddCommand(metricsCmd)
}
