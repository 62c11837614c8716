package cli

import (
	"fmt"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/spf13/cobra"
)

// Progress derives per-pattern study state, set during app initialization.
var Progress core.ProgressTracker

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show study progress per pattern",
	Long: `Show how far along each pattern is: untouched, learning, practiced,
or mastered, together with demo runs, quizzes taken, and the best score.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Progress == nil {
			return fmt.Errorf("progress tracker not initialized")
		}

		all, err := Progress.AllProgress()
		if err != nil {
			return fmt.Errorf("deriving progress: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "  %-16s %-10s %-6s %-8s %-6s %s\n", "PATTERN", "MASTERY", "DEMOS", "QUIZZES", "BEST", "LAST STUDIED")
		fmt.Fprintf(w, "  %-16s %-10s %-6s %-8s %-6s %s\n", "-------", "-------", "-----", "-------", "----", "------------")
		for _, p := range all {
			last := "never"
			if p.LastStudied != nil {
				last = p.LastStudied.Format("2006-01-02")
			}
			best := "-"
			if p.QuizzesTaken > 0 {
				best = fmt.Sprintf("%d%%", p.BestScorePct)
			}
			fmt.Fprintf(w, "  %-16s %-10s %-6d %-8d %-6s %s\n", p.Pattern, p.Mastery, p.DemosRun, p.QuizzesTaken, best, last)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
