// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"math/rand/v2"
)

// Mode is the polling discipline of one invocation. It is fixed for the
// whole invocation: a Step retry loop must pass the same mode every call.
type Mode uint8

const (
	// Fair polls the pending arms in a fresh uniform random permutation
	// every round, so that simultaneously ready arms are chosen with
	// equal probability and no arm structurally starves.
	Fair Mode = iota
	// Biased polls the pending arms in ascending index order every
	// round, making the selection a strict priority select.
	Biased
)

// Rand is the injected randomness capability behind Fair mode.
// IntN must return a uniform value in [0, n); *math/rand/v2.Rand
// satisfies it. Fairness is exactly as uniform as the injected source.
type Rand interface {
	IntN(n int) int
}

// defaultRand adapts the process-global math/rand/v2 generator.
type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// roundOrder produces the sequence of arm ordinals for one round of
// polling: the indices of the still-pending arms, ascending for Biased,
// freshly permuted for Fair. The scratch slice is reused across rounds.
func (s *Set[R]) roundOrder(mode Mode) []int {
	s.order = s.order[:0]
	for i := range s.arms {
		if s.arms[i].status == Pending {
			s.order = append(s.order, i)
		}
	}
	if mode == Fair {
		permute(s.order, s.rng)
	}
	return s.order
}

// permute applies an in-place Fisher-Yates shuffle driven by r,
// uniform over all permutations of order when r.IntN is uniform.
func permute(order []int, r Rand) {
	for i := len(order) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}
