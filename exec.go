// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/iox"
)

// Run drives rounds of guarded polling until the set resolves, suspending
// between fruitless rounds through the set's Waiter (adaptive backoff via
// iox.Backoff when none is injected). Does not spawn goroutines or create
// channels; the calling goroutine polls every arm itself.
//
// Exactly one handler — an arm's, the default clause, or the complete
// clause — runs before Run returns an outcome. A set with all arms
// forever pending and no default clause blocks indefinitely, like
// blocking I/O; composing a timer arm (CaseAfter) bounds the wait.
func Run[R any](s *Set[R], mode Mode) (Outcome[R], error) {
	w := s.w
	if w == nil {
		w = &BackoffWaiter{}
	}
	for {
		w.Prepare()
		out, err := Step(s, mode)
		if err == nil || !iox.IsWouldBlock(err) {
			return out, err
		}
		w.Wait()
	}
}
