// Package cli wires the cobra commands: serve runs the dashboard, bench runs
// the one-shot evaluation and prints the accuracy table.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string

	// Version is set from main.
	Version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "visitorcast",
	Short: "Forecasting benchmark and dashboard for monthly visitor counts",
	Long: `Visitorcast fits several univariate forecasting models to a monthly
visitor-count series, scores them on a held-out tail, combines them into an
ensemble, and serves the results through an interactive dashboard.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
}

// SetVersion sets the version for the CLI.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}
