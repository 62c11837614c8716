package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	pbmcp "github.com/hferraz/patternbook/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the patternbook MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the patternbook MCP server on stdio",
	Long: `Start the patternbook MCP server on stdio transport.

The server exposes the notebook as MCP tools that AI coding assistants
can call: get_pattern, list_patterns, run_demo, get_progress,
quiz_question, get_metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		srv := pbmcp.NewServer(Catalog, Demos, Quizzes, Progress, MetricsCalc, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
