// Package codec implements the canonical ABI encoding used on the guest
// boundary: a single 256-bit unsigned integer carried as one 32-byte
// big-endian word. Encode and decode are the same canonical form, so
// round-tripping is lossless.
package codec

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// WordSize is the byte length of one ABI-encoded uint256.
const WordSize = 32

var uint256Args = abi.Arguments{{Type: mustNewType("uint256")}}

func mustNewType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return ty
}

// EncodeUint256 returns the canonical 32-byte ABI encoding of v.
func EncodeUint256(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 {
		return nil, fmt.Errorf("value must be a non-negative integer")
	}
	if v.BitLen() > 256 {
		return nil, fmt.Errorf("value exceeds 256 bits (bit length %d)", v.BitLen())
	}
	return uint256Args.Pack(v)
}

// DecodeUint256 parses data as the canonical encoding of exactly one
// uint256. Decoding is strict: anything other than a single 32-byte word is
// rejected.
func DecodeUint256(data []byte) (*big.Int, error) {
	if len(data) != WordSize {
		return nil, fmt.Errorf("expected %d bytes, got %d", WordSize, len(data))
	}
	values, err := uint256Args.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("abi unpack: %w", err)
	}
	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected decoded type %T", values[0])
	}
	return v, nil
}
