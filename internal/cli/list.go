package cli

import (
	"fmt"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/hferraz/patternbook/pkg/models"
	"github.com/spf13/cobra"
)

// Catalog is the pattern catalog instance, set during app initialization.
var Catalog core.Catalog

// DefaultCategory is the configured category filter from .pbconfig, set
// during app initialization. Applied when --category is not given.
var DefaultCategory string

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patterns in the catalog",
	Long: `List all patterns in the catalog, grouped by category.

Optionally filter to a single category using --category
(behavioral, structural, creational). Without --category, the
defaults.category setting from .pbconfig applies, if set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		filter := listCategory
		if filter == "" {
			filter = DefaultCategory
		}

		if filter != "" {
			category := models.Category(filter)
			patterns := Catalog.ByCategory(category)
			if len(patterns) == 0 {
				return fmt.Errorf("unknown category %q (behavioral, structural, creational)", filter)
			}
			printCategoryGroup(cmd, string(category), patterns)
			return nil
		}

		grouped := make(map[models.Category][]models.Pattern)
		for _, p := range Catalog.All() {
			grouped[p.Category] = append(grouped[p.Category], p)
		}

		order := []models.Category{
			models.CategoryBehavioral,
			models.CategoryStructural,
			models.CategoryCreational,
		}
		for _, category := range order {
			if group, ok := grouped[category]; ok && len(group) > 0 {
				printCategoryGroup(cmd, string(category), group)
				fmt.Fprintln(cmd.OutOrStdout())
			}
		}
		return nil
	},
}

// printCategoryGroup prints a table of patterns under a category heading.
func printCategoryGroup(cmd *cobra.Command, category string, patterns []models.Pattern) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "== %s (%d) ==\n", category, len(patterns))
	fmt.Fprintf(w, "  %-16s %-16s %s\n", "ID", "NAME", "DEMO")
	fmt.Fprintf(w, "  %-16s %-16s %s\n", "--", "----", "----")
	for _, p := range patterns {
		fmt.Fprintf(w, "  %-16s %-16s %s\n", p.ID, p.Name, p.DemoName)
	}
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (behavioral, structural, creational)")
	rootCmd.AddCommand(listCmd)
}
