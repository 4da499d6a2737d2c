// Package zkvm provides a local execution environment for zkVM-style guest
// programs: one-shot routines that read an input channel, optionally commit
// public output to a journal, and either succeed or abort the whole
// execution. The executor here stands in for the proving host; it runs the
// same guest logic without generating a proof.
package zkvm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/zkvmlabs/zkvm-predicate-demo/internal/logger"
)

// GuestFunc is a guest program: a single synchronous routine run against an
// isolated Env. It has exactly two terminal outcomes, returning normally
// (success) or aborting the execution. There is no intermediate state and
// no retry.
type GuestFunc func(env *Env)

// Outcome is the host-visible result of one execution. A failed execution
// carries no journal, no digest and no fault detail.
type Outcome struct {
	Success bool
	// Journal is the guest's committed public output, nil unless Success.
	Journal []byte
	// Digest is the SHA-256 digest of Journal, zero unless Success.
	Digest [32]byte
}

// Executor runs guest programs locally. Each execution is isolated: fresh
// Env, no shared mutable state between invocations, so independent
// executions may run in parallel.
type Executor struct {
	log zerolog.Logger
}

// NewExecutor returns an Executor logging through the process-wide logger.
func NewExecutor() *Executor {
	return &Executor{log: logger.Logger().With().Str("component", "executor").Logger()}
}

// Execute runs guest against the given input bytes and returns its outcome.
// Any unwind inside the guest, whether a deliberate abort or a stray panic,
// collapses into the same failure outcome.
func (ex *Executor) Execute(input []byte, guest GuestFunc) Outcome {
	env := newEnv(bytes.NewReader(input))
	if reason := run(env, guest); reason != nil {
		ex.log.Debug().Err(reason).Msg("guest execution aborted")
		return Outcome{}
	}
	journal := append([]byte(nil), env.journal.Bytes()...)
	return Outcome{
		Success: true,
		Journal: journal,
		Digest:  sha256.Sum256(journal),
	}
}

// ExecuteAll runs one independent execution per input, in parallel, and
// returns the outcomes in input order. The executions share nothing; ctx
// only bounds the batch as a whole.
func (ex *Executor) ExecuteAll(ctx context.Context, inputs [][]byte, guest GuestFunc) ([]Outcome, error) {
	outcomes := make([]Outcome, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = ex.Execute(input, guest)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// run invokes the guest and converts any unwind into a single abort reason.
func run(env *Env, guest GuestFunc) (reason error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case guestAbort:
				reason = v.reason
			default:
				reason = fmt.Errorf("guest fault: %v", v)
			}
		}
	}()
	guest(env)
	return nil
}
