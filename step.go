// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/iox"
)

// Step drives the selection through exactly one round of polling.
//
// Each still-pending arm is polled once, in the order chosen by mode. The
// first arm whose operation completed and whose guard accepted fires:
// its handler runs and the set is consumed. A round that accepts nothing
// resolves through the clauses — complete when every arm is terminal,
// otherwise default — and where Run would suspend, Step instead returns
// iox.ErrWouldBlock with the set unconsumed and retryable.
//
// Stepping a consumed set panics. Mode must not change between retries.
func Step[R any](s *Set[R], mode Mode) (Outcome[R], error) {
	if s.done {
		panic("alt: set already resolved")
	}
	anyPending := false
	for _, i := range s.roundOrder(mode) {
		arm := &s.arms[i]
		v, err := arm.pollOnce()
		if err != nil {
			anyPending = true
			continue
		}
		arm.status = Ready
		if arm.match != nil {
			u, ok := arm.match(v)
			if !ok {
				arm.status = Exhausted
				if s.pol == RejectFatal {
					s.resolve()
					var zero Outcome[R]
					return zero, &MismatchError{Index: i}
				}
				continue
			}
			v = u
		}
		arm.status = Fired
		s.resolve()
		return Outcome[R]{Index: i, Value: arm.handle(v)}, nil
	}
	if !anyPending {
		// Every arm is terminal and none fired: complete beats default.
		s.resolve()
		switch {
		case s.comp != nil:
			return Outcome[R]{Index: CompleteIndex, Value: s.comp()}, nil
		case s.def != nil:
			return Outcome[R]{Index: DefaultIndex, Value: s.def()}, nil
		default:
			var zero Outcome[R]
			return zero, ErrExhausted
		}
	}
	if s.def != nil {
		s.resolve()
		return Outcome[R]{Index: DefaultIndex, Value: s.def()}, nil
	}
	var zero Outcome[R]
	return zero, iox.ErrWouldBlock
}
