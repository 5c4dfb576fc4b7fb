package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synapseradio/combo/calc"
	"github.com/synapseradio/combo/format"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression and print its value",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 0 {
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(source)
			} else {
				input = strings.Join(args, " ")
			}

			out := calc.Parse(input)
			if !out.OK {
				return fmt.Errorf("%s", format.FailureMessage(out.Expected, out.Pos))
			}

			value, err := out.Value.Eval()
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			fmt.Println(value)
			return nil
		},
	}
}
