package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search patterns and notes",
	Long: `Search the pattern catalog and study notes for a text query.

Catalog matches search names, intents, key points, and participants.
Note matches search note text, tags, and pattern IDs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		query := strings.Join(args, " ")
		w := cmd.OutOrStdout()
		found := false

		patterns := Catalog.Search(query)
		if len(patterns) > 0 {
			found = true
			fmt.Fprintf(w, "Patterns (%d):\n", len(patterns))
			for _, p := range patterns {
				fmt.Fprintf(w, "  %-16s %s\n", p.ID, p.Intent)
			}
		}

		if Notes != nil {
			notes, err := Notes.Search(query)
			if err != nil {
				return fmt.Errorf("searching notes: %w", err)
			}
			if len(notes) > 0 {
				if found {
					fmt.Fprintln(w)
				}
				found = true
				fmt.Fprintf(w, "Notes (%d):\n", len(notes))
				printNoteTable(cmd, notes)
			}
		}

		if !found {
			fmt.Fprintf(w, "No matches for %q.\n", query)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
