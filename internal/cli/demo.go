package cli

import (
	"fmt"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/spf13/cobra"
)

// Demos runs pattern demos, set during app initialization.
var Demos core.DemoRunner

var demoCmd = &cobra.Command{
	Use:   "demo <pattern>",
	Short: "Run a pattern's toy demo",
	Long: `Run the toy demo attached to a pattern and print its transcript.

Demos are the worked examples behind each reference card: the duck
simulator for strategy, the weather station for observer, the coffee
shop for decorator, the pizza store for factory-method, and the
chocolate boiler for singleton.

Each run is recorded as study activity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Demos == nil {
			return fmt.Errorf("demo runner not initialized")
		}
		return Demos.Run(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
