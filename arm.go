// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/kont"
)

// Status is the lifecycle state of an arm within one invocation.
type Status uint8

const (
	// Pending means the arm's operation has not completed yet.
	Pending Status = iota
	// Ready means the operation completed but its value has not been
	// consumed. Transient: a Ready arm becomes Fired or Exhausted within
	// the same poll step.
	Ready
	// Fired is terminal: the guard accepted and the handler ran.
	Fired
	// Exhausted is terminal: the operation completed but the arm cannot
	// fire — its guard rejected the value, it was disabled by When, or
	// the set resolved elsewhere first.
	Exhausted
)

// Arm is one candidate operation of a selection, paired with an optional
// guard and a handler. Identity is the arm's ordinal position in its Set.
//
// Operation values cross the arm boundary type-erased as [kont.Erased];
// the typed constructors Case and CaseMatch recover concrete types at the
// edges. An Arm holds single-consume state and belongs to at most one Set.
type Arm[R any] struct {
	poll    func() (kont.Erased, error)
	match   func(kont.Erased) (kont.Erased, bool)
	handle  func(kont.Erased) R
	release func()
	status  Status
}

// Case creates an arm over a non-blocking operation.
//
// poll reports the operation's state: a non-nil error (conventionally
// [code.hybscloud.com/iox.ErrWouldBlock]) means not ready yet, a nil error
// means the operation completed with the returned value. After the first
// nil-error return the operation is never polled again. Operations report
// their own failures through the value type (e.g. [kont.Either]), not the
// poll error.
func Case[T, R any](poll func() (T, error), handler func(T) R) Arm[R] {
	return Arm[R]{
		poll: func() (kont.Erased, error) {
			v, err := poll()
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		handle: func(v kont.Erased) R {
			return handler(v.(T))
		},
	}
}

// CaseMatch creates an arm whose completed value passes through a guard
// before the handler may fire. The guard either accepts, projecting the
// operation value to the handler's binding, or rejects.
//
// A rejection exhausts the arm: the operation's single result is consumed
// and cannot be replayed. Under the default [RejectFatal] policy rejection
// also aborts the whole invocation with a [*MismatchError].
func CaseMatch[T, U, R any](poll func() (T, error), guard func(T) (U, bool), handler func(U) R) Arm[R] {
	return Arm[R]{
		poll: func() (kont.Erased, error) {
			v, err := poll()
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		match: func(v kont.Erased) (kont.Erased, bool) {
			u, ok := guard(v.(T))
			if !ok {
				return nil, false
			}
			return u, true
		},
		handle: func(v kont.Erased) R {
			return handler(v.(U))
		},
	}
}

// When disables the arm if cond is false: it enters the set already
// Exhausted, is never polled and never released, and keeps the ordinals of
// the arms after it stable. The runtime form of a conditional branch.
func (a Arm[R]) When(cond bool) Arm[R] {
	if !cond {
		a.status = Exhausted
	}
	return a
}

// Release attaches a cancellation hook, invoked if the set resolves while
// this arm is still pending. Hooks compose in attachment order, after any
// hook the arm's constructor installed (CaseExpr discards its live
// suspension before user hooks run).
func (a Arm[R]) Release(f func()) Arm[R] {
	if prev := a.release; prev != nil {
		a.release = func() {
			prev()
			f()
		}
		return a
	}
	a.release = f
	return a
}

// pollOnce polls the underlying operation.
// Polling a terminal arm is an internal invariant violation: the
// operation's single result was already consumed.
func (a *Arm[R]) pollOnce() (kont.Erased, error) {
	if a.status != Pending {
		panic("alt: arm polled after terminal state")
	}
	return a.poll()
}
