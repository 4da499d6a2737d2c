package main

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkvmlabs/zkvm-predicate-demo/internal/logger"
	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm/codec"
)

const envPrefix = "ZKVM_DEMO"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zkvm-demo",
		Short: "Run the equality guest program against local inputs",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env is fine; env vars and flags still apply.
			_ = godotenv.Load()

			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			lvl, err := zerolog.ParseLevel(viper.GetString("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", viper.GetString("log-level"), err)
			}
			logger.SetLevel(lvl)
			return nil
		},
	}
	cmd.PersistentFlags().String("log-level", "info", "minimum log level (trace|debug|info|warn|error)")
	cmd.AddCommand(runCmd(), encodeCmd(), batchCmd())
	return cmd
}

// parseInput converts a CLI value into the raw bytes fed to the guest.
// Decimal values are bounded to 256 bits and canonically encoded; a 0x
// prefix passes raw bytes through unencoded so malformed buffers can be fed
// on purpose.
func parseInput(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		return hexutil.Decode(s)
	}
	v, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer in the 256-bit range: %q", s)
	}
	if v.IsNegative() {
		return nil, fmt.Errorf("value must be unsigned: %q", s)
	}
	return codec.EncodeUint256(v.BigInt())
}
