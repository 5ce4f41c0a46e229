// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt_test

import (
	"code.hybscloud.com/alt"
	"code.hybscloud.com/iox"
)

// neverReady is an operation that never completes.
func neverReady[T any]() (T, error) {
	var zero T
	return zero, iox.ErrWouldBlock
}

// ready returns an operation that completes immediately with v.
func ready[T any](v T) func() (T, error) {
	return func() (T, error) { return v, nil }
}

// readyOnNth returns an operation that completes with v on the nth poll.
func readyOnNth[T any](n int, v T) func() (T, error) {
	polls := 0
	return func() (T, error) {
		polls++
		if polls < n {
			var zero T
			return zero, iox.ErrWouldBlock
		}
		return v, nil
	}
}

// ident is the identity handler.
func ident[T any](v T) T { return v }

// stepRetry drives a set to resolution via a Step retry loop.
// Spins on iox.ErrWouldBlock (nothing ready yet).
// Used by stepping tests to exercise the non-blocking path.
func stepRetry[R any](s *alt.Set[R], mode alt.Mode) (alt.Outcome[R], error) {
	for {
		out, err := alt.Step(s, mode)
		if !iox.IsWouldBlock(err) {
			return out, err
		}
	}
}
