// Package equality contains a guest program that proves knowledge of an
// input equal to a predefined value. The input arrives as the canonical ABI
// encoding of one 256-bit unsigned integer; on a match the guest commits
// the re-encoded value as its public journal, and any other input aborts
// the whole execution.
package equality

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"

	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm"
	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm/codec"
)

// PredefinedValue is the value the decoded input must equal. Fixed at build
// time and identical across all executions of a given build.
var PredefinedValue = big.NewInt(12345)

// Guest returns a guest program asserting that the input decodes to
// expected. The routine is one-shot: read the input channel to exhaustion,
// strict decode, equality check, single commit.
func Guest(expected *big.Int) zkvm.GuestFunc {
	return func(env *zkvm.Env) {
		input := env.ReadAll()

		value, err := codec.DecodeUint256(input)
		if err != nil {
			env.Abort(errorsmod.Wrap(zkvm.ErrDecode, err.Error()))
		}

		env.Assert(value.Cmp(expected) == 0, zkvm.ErrPredicate)

		out, err := codec.EncodeUint256(value)
		if err != nil {
			// Unreachable for a value that just decoded, but a guest has no
			// way to report errors other than aborting.
			env.Abort(errorsmod.Wrap(zkvm.ErrDecode, err.Error()))
		}
		env.Commit(out)
	}
}

// Default returns the build-time configured guest, Guest(PredefinedValue).
func Default() zkvm.GuestFunc {
	return Guest(PredefinedValue)
}
