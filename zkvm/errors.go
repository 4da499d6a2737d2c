package zkvm

import errorsmod "cosmossdk.io/errors"

const codespace = "zkvm"

// Abort reasons a guest may raise. They exist for host-side diagnostics
// only; the execution Outcome deliberately does not carry them, so decode
// faults and predicate faults stay indistinguishable to anything observing
// the execution from outside.
var (
	ErrRead      = errorsmod.Register(codespace, 2, "input channel read failed")
	ErrDecode    = errorsmod.Register(codespace, 3, "malformed input encoding")
	ErrPredicate = errorsmod.Register(codespace, 4, "predicate not satisfied")
)
