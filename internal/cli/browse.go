package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Browse panel indices.
const (
	panelCatalog = iota
	panelProgress
	panelReviews
	panelCount
)

type browseModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	patterns []patternRow
	progress []progressRow
	reviews  []reviewRow

	// State.
	loading bool
	err     error
}

type patternRow struct {
	id       string
	name     string
	category string
}

type progressRow struct {
	pattern string
	mastery string
	best    int
	quizzes int
}

type reviewRow struct {
	pattern string
	reason  string
}

// notebookLoadedMsg carries loaded data back to the model.
type notebookLoadedMsg struct {
	patterns []patternRow
	progress []progressRow
	reviews  []reviewRow
	err      error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	masteryMastered  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	masteryPracticed = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	masteryLearning  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	masteryUntouched = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	reviewDueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newBrowseModel() browseModel {
	return browseModel{
		activePanel: panelCatalog,
		loading:     true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return loadNotebook
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadNotebook
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notebookLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.patterns = msg.patterns
		m.progress = msg.progress
		m.reviews = msg.reviews
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" patternbook ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading notebook...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	catalogPanel := m.renderCatalogPanel()
	progressPanel := m.renderProgressPanel()
	reviewsPanel := m.renderReviewsPanel()

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		// Horizontal layout: three columns.
		colWidth := availableWidth / 3
		catalogPanel = m.applyPanelStyle(panelCatalog, catalogPanel, colWidth-4)
		progressPanel = m.applyPanelStyle(panelProgress, progressPanel, colWidth-4)
		reviewsPanel = m.applyPanelStyle(panelReviews, reviewsPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, catalogPanel, progressPanel, reviewsPanel)
	} else {
		// Vertical layout: stacked.
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		catalogPanel = m.applyPanelStyle(panelCatalog, catalogPanel, panelWidth)
		progressPanel = m.applyPanelStyle(panelProgress, progressPanel, panelWidth)
		reviewsPanel = m.applyPanelStyle(panelReviews, reviewsPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, catalogPanel, progressPanel, reviewsPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m browseModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m browseModel) renderCatalogPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Catalog"))
	b.WriteString("\n")

	if len(m.patterns) == 0 {
		b.WriteString("  No patterns found.")
		return b.String()
	}

	current := ""
	for _, p := range m.patterns {
		if p.category != current {
			current = p.category
			b.WriteString(fmt.Sprintf("  %s\n", current))
		}
		b.WriteString(fmt.Sprintf("    %-16s %s\n", p.id, p.name))
	}
	return b.String()
}

func (m browseModel) renderProgressPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Progress"))
	b.WriteString("\n")

	if len(m.progress) == 0 {
		b.WriteString("  No study history yet.")
		return b.String()
	}

	for _, p := range m.progress {
		label := fmt.Sprintf("  %-16s %s", p.pattern, p.mastery)
		if p.quizzes > 0 {
			label += fmt.Sprintf(" (best %d%%)", p.best)
		}
		b.WriteString(styleForMastery(p.mastery).Render(label))
		b.WriteString("\n")
	}
	return b.String()
}

func (m browseModel) renderReviewsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Due for review"))
	b.WriteString("\n")

	if len(m.reviews) == 0 {
		b.WriteString("  Nothing due. Keep going.")
		return b.String()
	}

	for _, r := range m.reviews {
		b.WriteString(reviewDueStyle.Render(fmt.Sprintf("  %-16s", r.pattern)))
		b.WriteString(" " + r.reason + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  Total: %d due", len(m.reviews)))
	return b.String()
}

func styleForMastery(mastery string) lipgloss.Style {
	switch mastery {
	case "mastered":
		return masteryMastered
	case "practiced":
		return masteryPracticed
	case "learning":
		return masteryLearning
	case "untouched":
		return masteryUntouched
	default:
		return lipgloss.NewStyle()
	}
}

func loadNotebook() tea.Msg {
	var result notebookLoadedMsg

	if Catalog != nil {
		for _, p := range Catalog.All() {
			result.patterns = append(result.patterns, patternRow{
				id:       string(p.ID),
				name:     p.Name,
				category: string(p.Category),
			})
		}
		sort.SliceStable(result.patterns, func(i, j int) bool {
			return result.patterns[i].category < result.patterns[j].category
		})
	}

	if Progress != nil {
		all, err := Progress.AllProgress()
		if err != nil {
			result.err = fmt.Errorf("loading progress: %w", err)
			return result
		}
		for _, p := range all {
			result.progress = append(result.progress, progressRow{
				pattern: string(p.Pattern),
				mastery: string(p.Mastery),
				best:    p.BestScorePct,
				quizzes: p.QuizzesTaken,
			})
		}
	}

	if Reviews != nil {
		due, err := Reviews.Due()
		if err != nil {
			result.err = fmt.Errorf("loading reviews: %w", err)
			return result
		}
		for _, item := range due {
			result.reviews = append(result.reviews, reviewRow{
				pattern: string(item.Pattern),
				reason:  item.Reason,
			})
		}
	}

	return result
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive TUI for the notebook",
	Long: `Launch an interactive terminal view of the notebook: the pattern
catalog, per-pattern progress, and the patterns due for review.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}
		p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
