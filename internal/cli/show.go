package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/pkg/models"
	"github.com/spf13/cobra"
)

// StudyRec records study activity, set during app initialization.
var StudyRec core.StudyRecorder

var (
	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cardSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	cardCategoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Italic(true)
)

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Show a pattern's reference card",
	Long: `Show the full reference card for one pattern: intent, the problem it
solves, the solution shape, participants, and key points.

Viewing a card is recorded as study activity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		pattern, err := Catalog.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderPatternCard(pattern))
		recordViewed(pattern.ID)
		return nil
	},
}

// renderPatternCard formats one pattern as a styled reference card.
func renderPatternCard(p *models.Pattern) string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(fmt.Sprintf(" %s ", p.Name)))
	b.WriteString("  ")
	b.WriteString(cardCategoryStyle.Render(string(p.Category)))
	b.WriteString("\n\n")

	b.WriteString(cardSectionStyle.Render("Intent"))
	b.WriteString("\n  " + p.Intent + "\n\n")

	b.WriteString(cardSectionStyle.Render("Problem"))
	b.WriteString("\n  " + p.Problem + "\n\n")

	b.WriteString(cardSectionStyle.Render("Solution"))
	b.WriteString("\n  " + p.Solution + "\n\n")

	b.WriteString(cardSectionStyle.Render("Participants"))
	b.WriteString("\n")
	for _, part := range p.Participants {
		b.WriteString("  - " + part + "\n")
	}
	b.WriteString("\n")

	b.WriteString(cardSectionStyle.Render("Key points"))
	b.WriteString("\n")
	for _, kp := range p.KeyPoints {
		b.WriteString("  - " + kp + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Run the demo: pb demo %s\n", p.ID))
	return b.String()
}

// recordViewed logs the view in the study log and event log. Failures are
// non-fatal: the card was already shown.
func recordViewed(pattern models.PatternID) {
	if StudyRec != nil {
		_ = StudyRec.RecordStudy(models.StudyRecord{
			Pattern:  pattern,
			Activity: models.ActivityViewed,
			At:       time.Now().UTC(),
		})
	}
	if EventLog != nil {
		_ = EventLog.Write(newEvent("pattern.viewed", map[string]any{"pattern": string(pattern)}))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
