// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"time"

	"code.hybscloud.com/iox"
)

// CaseAfter creates an arm that completes d after construction. The
// composed-timeout idiom: select a timeout by adding a CaseAfter arm to
// the set. Under a BackoffWaiter the deadline is observed on the next
// re-poll; under a Notifier, within a quiet Wait cycle.
func CaseAfter[R any](d time.Duration, handler func(time.Time) R) Arm[R] {
	return CaseDeadline(time.Now().Add(d), handler)
}

// CaseDeadline creates an arm that completes once t has passed. The
// handler observes the fire time, not the deadline.
func CaseDeadline[R any](t time.Time, handler func(time.Time) R) Arm[R] {
	return Case(func() (time.Time, error) {
		now := time.Now()
		if now.Before(t) {
			return time.Time{}, iox.ErrWouldBlock
		}
		return now, nil
	}, handler)
}
