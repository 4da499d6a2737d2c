package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zkvmlabs/zkvm-predicate-demo/guests/equality"
	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Run one independent execution per line of the input file",
		Long: `Run one isolated guest execution per non-empty line of the file, in
parallel. Lines use the same value syntax as the run command. Executions
share nothing; each gets a fresh environment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var (
				inputs [][]byte
				lines  []string
			)
			for _, line := range strings.Split(string(raw), "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				input, err := parseInput(line)
				if err != nil {
					return fmt.Errorf("line %q: %w", line, err)
				}
				inputs = append(inputs, input)
				lines = append(lines, line)
			}

			outcomes, err := zkvm.NewExecutor().ExecuteAll(cmd.Context(), inputs, equality.Default())
			if err != nil {
				return err
			}

			succeeded := 0
			for i, outcome := range outcomes {
				status := "abort"
				if outcome.Success {
					status = "success"
					succeeded++
				}
				fmt.Printf("%s: %s\n", lines[i], status)
			}
			fmt.Printf("%d/%d executions succeeded\n", succeeded, len(outcomes))
			return nil
		},
	}
}
