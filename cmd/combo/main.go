package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "combo",
		Short: "Parse and evaluate expressions with combinator parsers",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
