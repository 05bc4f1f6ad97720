// Package cmd implements the dsv command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dsv",
	Short: "Parse delimiter-separated values with configurable dialects",
	Long: `dsv tokenizes delimiter-separated input where the delimiter, quote,
and line terminator are each configurable, possibly multi-character, tokens.

Classic CSV is the default dialect. Dialects can be given per flag or
loaded from a YAML file:

  delimiter: "::"
  quote: "'"
  newline: "\r\n"`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
