package equality

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm"
	"github.com/zkvmlabs/zkvm-predicate-demo/zkvm/codec"
)

func mustEncode(t *testing.T, v *big.Int) []byte {
	t.Helper()
	encoded, err := codec.EncodeUint256(v)
	require.NoError(t, err)
	return encoded
}

func TestMatchingInputCommitsValue(t *testing.T) {
	input := mustEncode(t, PredefinedValue)

	outcome := zkvm.NewExecutor().Execute(input, Default())
	require.True(t, outcome.Success)

	committed, err := codec.DecodeUint256(outcome.Journal)
	require.NoError(t, err)
	require.Zero(t, committed.Cmp(PredefinedValue))
}

func TestMismatchedInputAborts(t *testing.T) {
	values := []*big.Int{
		big.NewInt(12344),
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Lsh(big.NewInt(1), 255),
	}
	ex := zkvm.NewExecutor()
	for _, v := range values {
		outcome := ex.Execute(mustEncode(t, v), Default())
		require.False(t, outcome.Success, "value %s", v)
		require.Nil(t, outcome.Journal, "value %s", v)
	}
}

func TestMalformedInputAborts(t *testing.T) {
	ex := zkvm.NewExecutor()
	for _, input := range [][]byte{nil, {}, make([]byte, 31), make([]byte, 33), make([]byte, 64)} {
		outcome := ex.Execute(input, Default())
		require.False(t, outcome.Success, "input length %d", len(input))
		require.Nil(t, outcome.Journal)
	}
}

func TestRepeatedRunsAreByteIdentical(t *testing.T) {
	input := mustEncode(t, PredefinedValue)
	ex := zkvm.NewExecutor()

	first := ex.Execute(input, Default())
	require.True(t, first.Success)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, ex.Execute(input, Default()))
	}
}

func TestArbitraryExpectedValue(t *testing.T) {
	expected := big.NewInt(7)
	guest := Guest(expected)
	ex := zkvm.NewExecutor()

	outcome := ex.Execute(mustEncode(t, expected), guest)
	require.True(t, outcome.Success)
	require.Equal(t, mustEncode(t, expected), outcome.Journal)

	outcome = ex.Execute(mustEncode(t, PredefinedValue), guest)
	require.False(t, outcome.Success)
}

func TestBatchedExecutions(t *testing.T) {
	inputs := [][]byte{
		mustEncode(t, PredefinedValue),
		mustEncode(t, big.NewInt(12344)),
		{},
		mustEncode(t, PredefinedValue),
	}

	outcomes, err := zkvm.NewExecutor().ExecuteAll(context.Background(), inputs, Default())
	require.NoError(t, err)
	require.Len(t, outcomes, len(inputs))
	require.True(t, outcomes[0].Success)
	require.False(t, outcomes[1].Success)
	require.False(t, outcomes[2].Success)
	require.True(t, outcomes[3].Success)
	require.Equal(t, outcomes[0], outcomes[3])
}

func TestOnlyPredefinedValueSucceeds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	ex := zkvm.NewExecutor()
	guest := Default()

	properties := gopter.NewProperties(parameters)
	properties.Property("input != PredefinedValue always aborts", prop.ForAll(
		func(a uint64) bool {
			v := new(big.Int).SetUint64(a)
			encoded, err := codec.EncodeUint256(v)
			if err != nil {
				return false
			}
			outcome := ex.Execute(encoded, guest)
			if v.Cmp(PredefinedValue) == 0 {
				return outcome.Success
			}
			return !outcome.Success && outcome.Journal == nil
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
