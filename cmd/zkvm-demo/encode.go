package main

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm/codec"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the canonical encoding of a 256-bit unsigned integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, ok := sdkmath.NewIntFromString(args[0])
			if !ok || v.IsNegative() {
				return fmt.Errorf("not an unsigned decimal integer in the 256-bit range: %q", args[0])
			}
			out, err := codec.EncodeUint256(v.BigInt())
			if err != nil {
				return err
			}
			fmt.Println(hexutil.Encode(out))
			return nil
		},
	}
}
