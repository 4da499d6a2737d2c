package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkvmlabs/zkvm-predicate-demo/guests/equality"
	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <value>",
		Short: "Execute the guest against one input and print the journal",
		Long: `Execute the equality guest against one input.

The value is either a decimal 256-bit unsigned integer, which is canonically
ABI-encoded before execution, or a 0x-prefixed byte string fed to the guest
as-is. The command exits non-zero when the execution aborts; an abort does
not say whether decoding or the predicate failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(args[0])
			if err != nil {
				return err
			}

			outcome := zkvm.NewExecutor().Execute(input, equality.Default())
			if !outcome.Success {
				return fmt.Errorf("execution aborted: input did not produce a valid journal")
			}

			fmt.Printf("journal: %s\n", hexutil.Encode(outcome.Journal))
			fmt.Printf("digest:  %x\n", outcome.Digest)

			if path := viper.GetString("journal-file"); path != "" {
				if err := os.WriteFile(path, outcome.Journal, 0o644); err != nil {
					return fmt.Errorf("failed to write journal: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("journal-file", "", "optional path to write the raw journal bytes")
	return cmd
}
