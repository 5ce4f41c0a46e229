// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/iox"
)

// CaseRecv creates an arm over a Go channel receive. Not ready while the
// channel is empty and open; completes with the received element, or,
// once the channel is closed and drained, with the element type's zero
// value (plain Go receive semantics carried through).
func CaseRecv[T, R any](ch <-chan T, handler func(T) R) Arm[R] {
	return Case(func() (T, error) {
		select {
		case v := <-ch:
			return v, nil
		default:
			var zero T
			return zero, iox.ErrWouldBlock
		}
	}, handler)
}
