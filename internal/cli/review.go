package cli

import (
	"fmt"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/spf13/cobra"
)

// Reviews plans spaced reviews, set during app initialization.
var Reviews core.ReviewPlanner

var reviewNotify bool

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List patterns due for review",
	Long: `List the patterns that are due for review: never studied, or last
studied longer ago than the review interval. Mastered patterns get a
longer interval.

With --notify, a reminder is also sent to the configured webhook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Reviews == nil {
			return fmt.Errorf("review planner not initialized")
		}

		due, err := Reviews.Due()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(due) == 0 {
			fmt.Fprintln(w, "Nothing due for review. Keep going.")
			return nil
		}

		fmt.Fprintf(w, "Due for review (%d):\n", len(due))
		for _, item := range due {
			fmt.Fprintf(w, "  %-16s %s\n", item.Pattern, item.Reason)
		}

		if reviewNotify {
			return sendReviewReminder()
		}
		return nil
	},
}

var reviewDoneCmd = &cobra.Command{
	Use:   "done <pattern>",
	Short: "Mark a pattern as reviewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Reviews == nil {
			return fmt.Errorf("review planner not initialized")
		}
		if err := Reviews.MarkReviewed(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as reviewed.\n", args[0])
		return nil
	},
}

// sendReviewReminder evaluates the alert engine and pushes the result to
// the webhook notifier.
func sendReviewReminder() error {
	if AlertEngine == nil {
		return fmt.Errorf("alert engine not initialized (observability may be disabled)")
	}
	if Notifier == nil {
		return fmt.Errorf("notifier not initialized (set notifications.webhook_url in .pbconfig)")
	}

	alerts, err := AlertEngine.Evaluate()
	if err != nil {
		return fmt.Errorf("evaluating review alerts: %w", err)
	}
	if err := Notifier.Notify(alerts); err != nil {
		return fmt.Errorf("sending review reminder: %w", err)
	}
	return nil
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewNotify, "notify", false, "Also send a reminder to the configured webhook")
	reviewCmd.AddCommand(reviewDoneCmd)
	rootCmd.AddCommand(reviewCmd)
}
