package zkvm

import (
	"bytes"
	"io"

	errorsmod "cosmossdk.io/errors"
)

// Env is the execution environment handed to a guest program. It exposes the
// two channels the host provides: a byte-oriented input stream and the
// journal the guest commits its public output to.
//
// An Env belongs to exactly one invocation; the executor creates a fresh one
// per execution and never shares it.
type Env struct {
	stdin   io.Reader
	journal bytes.Buffer
}

func newEnv(stdin io.Reader) *Env {
	return &Env{stdin: stdin}
}

// ReadAll reads the input channel to exhaustion and returns the buffered
// bytes. The input is bounded and fully needed before any processing can
// occur, so there is no partial-read handling: a read error aborts the
// execution.
func (e *Env) ReadAll() []byte {
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		e.Abort(errorsmod.Wrap(ErrRead, err.Error()))
	}
	return data
}

// Commit appends b to the journal. Everything committed becomes part of the
// public output of a successful execution; aborted executions expose no
// journal at all.
func (e *Env) Commit(b []byte) {
	e.journal.Write(b)
}

// Abort terminates the execution. The reason reaches the host's debug log
// only, never the execution outcome, so a failed guest does not reveal
// which step failed.
func (e *Env) Abort(reason error) {
	panic(guestAbort{reason})
}

// Assert aborts the execution with reason unless cond holds.
func (e *Env) Assert(cond bool, reason error) {
	if !cond {
		e.Abort(reason)
	}
}

// guestAbort carries the abort reason through the stack unwind.
type guestAbort struct{ reason error }
