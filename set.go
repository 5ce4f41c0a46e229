// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

// Outcome index values for the non-arm resolutions.
const (
	// DefaultIndex marks an Outcome produced by the default clause.
	DefaultIndex = -1
	// CompleteIndex marks an Outcome produced by the complete clause.
	CompleteIndex = -2
)

// Outcome is the single result of one selection invocation: which case
// fired (an arm ordinal, DefaultIndex, or CompleteIndex) and the value its
// handler produced. On a non-nil error from Run or Step the Outcome is the
// zero value and must not be interpreted.
type Outcome[R any] struct {
	Index int
	Value R
}

// Fired returns the ordinal of the arm that fired, or false if the
// invocation resolved through a clause instead.
func (o Outcome[R]) Fired() (int, bool) {
	if o.Index < 0 {
		return 0, false
	}
	return o.Index, true
}

// IsDefault reports whether the default clause produced this outcome.
func (o Outcome[R]) IsDefault() bool { return o.Index == DefaultIndex }

// IsComplete reports whether the complete clause produced this outcome.
func (o Outcome[R]) IsComplete() bool { return o.Index == CompleteIndex }

// Set is the ordered arm collection of a single selection invocation,
// together with its clauses, reject policy, and injected capabilities.
//
// A Set is exclusively owned by one invocation: it must not be polled,
// resolved, or dropped by any other concurrent actor, and it is consumed
// by the first outcome or fatal error. Resuming a consumed set panics.
// Step's would-block return leaves the set live and retryable.
type Set[R any] struct {
	arms   []Arm[R]
	order  []int
	def    func() R
	comp   func() R
	rng    Rand
	w      Waiter
	serial Serial
	pol    RejectPolicy
	done   bool
}

// New creates a selection set over the given arms, in priority order.
// The arm list is copied; the zero-length set is legal and resolves
// through its clauses (or ErrExhausted) on the first round.
func New[R any](arms ...Arm[R]) *Set[R] {
	s := &Set[R]{
		arms:   make([]Arm[R], len(arms)),
		order:  make([]int, 0, len(arms)),
		rng:    defaultRand{},
		serial: nextSerial(),
	}
	copy(s.arms, arms)
	return s
}

// OnDefault installs the non-blocking fallback clause, fired when a full
// round over the pending arms accepts nothing. A set with a default clause
// never suspends.
func (s *Set[R]) OnDefault(f func() R) *Set[R] {
	s.def = f
	return s
}

// OnComplete installs the all-exhausted fallback clause, fired when every
// arm is terminal and none fired. When every arm is terminal the complete
// clause wins even if a default clause is present.
func (s *Set[R]) OnComplete(f func() R) *Set[R] {
	s.comp = f
	return s
}

// OnReject selects the guard rejection policy. The default is RejectFatal.
func (s *Set[R]) OnReject(p RejectPolicy) *Set[R] {
	s.pol = p
	return s
}

// Rand injects the randomness source used by Fair mode to permute each
// round's polling order. When not injected, the process-global
// math/rand/v2 generator is used.
func (s *Set[R]) Rand(r Rand) *Set[R] {
	s.rng = r
	return s
}

// Via injects the Waiter through which Run suspends between fruitless
// rounds. When not injected, Run waits with adaptive backoff.
func (s *Set[R]) Via(w Waiter) *Set[R] {
	s.w = w
	return s
}

// Serial returns the serial number assigned to this set.
func (s *Set[R]) Serial() Serial {
	return s.serial
}

// Status returns the lifecycle state of the arm at ordinal i.
// Valid after resolution: statuses are the post-mortem view of which arm
// fired and which were exhausted or still pending when the set resolved.
func (s *Set[R]) Status(i int) Status {
	return s.arms[i].status
}

// resolve consumes the set: after the outcome (or fatal error) is
// produced, every arm still pending is dropped and its release hook, if
// any, is invoked to cancel the underlying operation.
func (s *Set[R]) resolve() {
	s.done = true
	for i := range s.arms {
		a := &s.arms[i]
		if a.status == Pending && a.release != nil {
			a.release()
		}
	}
}
