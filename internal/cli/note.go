package cli

import (
	"fmt"
	"strings"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/pkg/models"
	"github.com/spf13/cobra"
)

// Notes manages pattern annotations, set during app initialization.
var Notes core.NoteManager

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage study notes",
	Long:  "Commands for adding, listing, and showing study notes attached to patterns.",
}

var (
	noteAddText string
	noteAddTags []string
)

var noteAddCmd = &cobra.Command{
	Use:   "add <pattern>",
	Short: "Add a note to a pattern",
	Long: `Add a free-text note to a pattern. Notes get sequential IDs and are
recorded as study activity.

Examples:

  pb note add strategy -m "composition over inheritance"
  pb note add decorator -m "soy pricing depends on size" --tags pricing,gotcha`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Notes == nil {
			return fmt.Errorf("note manager not initialized")
		}
		if strings.TrimSpace(noteAddText) == "" {
			return fmt.Errorf("note text is required (use -m)")
		}

		id, err := Notes.AddNote(args[0], noteAddText, noteAddTags)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", id)
		return nil
	},
}

var noteListPattern string

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List all notes, newest first.

Optionally filter to one pattern with --pattern, or to notes carrying any
of the given tags with --tags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Notes == nil {
			return fmt.Errorf("note manager not initialized")
		}

		var notes []models.Note
		var err error
		if len(noteListTags) > 0 {
			notes, err = Notes.QueryByTags(noteListTags)
		} else {
			notes, err = Notes.ListNotes(noteListPattern)
		}
		if err != nil {
			return err
		}

		if len(notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
			return nil
		}
		printNoteTable(cmd, notes)
		return nil
	},
}

var noteListTags []string

var noteShowCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Show one note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Notes == nil {
			return fmt.Errorf("note manager not initialized")
		}

		note, err := Notes.GetNote(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  [%s]  %s\n", note.ID, note.Pattern, note.Created.Format("2006-01-02 15:04"))
		if len(note.Tags) > 0 {
			fmt.Fprintf(w, "tags: %s\n", strings.Join(note.Tags, ", "))
		}
		fmt.Fprintf(w, "\n%s\n", note.Text)
		return nil
	},
}

// printNoteTable prints a compact table of notes.
func printNoteTable(cmd *cobra.Command, notes []models.Note) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %-10s %-16s %-12s %s\n", "ID", "PATTERN", "CREATED", "TEXT")
	fmt.Fprintf(w, "  %-10s %-16s %-12s %s\n", "--", "-------", "-------", "----")
	for _, note := range notes {
		text := note.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Fprintf(w, "  %-10s %-16s %-12s %s\n", note.ID, note.Pattern, note.Created.Format("2006-01-02"), text)
	}
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddText, "message", "m", "", "Note text (required)")
	noteAddCmd.Flags().StringSliceVar(&noteAddTags, "tags", nil, "Comma-separated tags")
	noteListCmd.Flags().StringVar(&noteListPattern, "pattern", "", "Filter by pattern")
	noteListCmd.Flags().StringSliceVar(&noteListTags, "tags", nil, "Filter by tags (any match)")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	rootCmd.AddCommand(noteCmd)
}
