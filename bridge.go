// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/kont"
)

// Dispatcher executes one suspended effect operation without blocking.
// Returns the resumption value on success, or iox.ErrWouldBlock when the
// operation cannot make progress yet. Operations report their own
// failures through the value domain (e.g. [kont.Either]), not the
// dispatch error.
type Dispatcher interface {
	Dispatch(op kont.Operation) (kont.Resumed, error)
}

// exprState drives one Expr-world protocol across polls. The expression
// is stepped lazily on the first poll; a live suspension is retained
// across would-block rounds and discarded if the set resolves while the
// arm is still pending.
type exprState[T any] struct {
	protocol kont.Expr[T]
	d        Dispatcher
	susp     *kont.Suspension[T]
	result   T
	started  bool
}

// poll advances the expression until it completes or the dispatcher
// reports would-block. Progress made before a would-block is retained:
// the next poll resumes from the last suspension, not from the start.
func (st *exprState[T]) poll() (kont.Erased, error) {
	if !st.started {
		st.started = true
		st.result, st.susp = kont.StepExpr(st.protocol)
	}
	for st.susp != nil {
		v, err := st.d.Dispatch(st.susp.Op())
		if err != nil {
			return nil, err
		}
		st.result, st.susp = st.susp.Resume(v)
	}
	return st.result, nil
}

// release discards the live suspension so the expression's pending frames
// are torn down rather than leaked.
func (st *exprState[T]) release() {
	if st.susp != nil {
		st.susp.Discard()
		st.susp = nil
	}
}

// CaseExpr creates an arm over an Expr-world protocol driven through a
// non-blocking Dispatcher. Each round the expression advances until it
// completes (the arm fires with its result) or the dispatcher cannot make
// progress (the arm stays pending and resumes from the same suspension
// next round).
func CaseExpr[T, R any](protocol kont.Expr[T], d Dispatcher, handler func(T) R) Arm[R] {
	st := &exprState[T]{protocol: protocol, d: d}
	return Arm[R]{
		poll: st.poll,
		handle: func(v kont.Erased) R {
			return handler(v.(T))
		},
		release: st.release,
	}
}

// CaseEff is CaseExpr for Cont-world protocols, reified on construction.
func CaseEff[T, R any](protocol kont.Eff[T], d Dispatcher, handler func(T) R) Arm[R] {
	return CaseExpr(kont.Reify(protocol), d, handler)
}
