// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alt provides a runtime selection engine for pollable asynchronous
// operations: wait on a fixed set of independent operations ("arms") and
// react to whichever completes first.
//
// Each arm wraps one non-blocking operation, an optional guard that filters
// its completed value, and a handler. A [Set] collects the arms of a single
// invocation together with optional default and complete clauses, and is
// consumed by producing exactly one [Outcome].
//
// # Architecture
//
//   - Polling: Operations report readiness non-blocking, returning
//     [code.hybscloud.com/iox.ErrWouldBlock]-style errors while pending.
//     Every operation is polled to completion at most once.
//   - Ordering: [Biased] polls arms in ascending index order every round,
//     making the select a strict priority select. [Fair] draws a fresh
//     uniform permutation of the pending arms every round from an injected
//     [Rand] source, so no arm is structurally favored.
//   - Suspension: Between fruitless rounds the engine waits through a
//     [Waiter] — adaptive backoff by default, or an eventcount [Notifier]
//     that producers wake after publishing, so no wakeup is lost.
//   - Execution: Dual-world API. [Run] blocks until resolution;
//     [Step] performs a single non-blocking round and returns
//     [code.hybscloud.com/iox.ErrWouldBlock] where Run would suspend,
//     making the engine easy to drive from a proactor loop.
//
// # API Topologies
//
//   - Arms: [Case] (plain operation), [CaseMatch] (guarded),
//     [Arm.When] (conditional), [Arm.Release] (cancellation hook).
//   - Sources: [CaseRecv] (Go channels), [CaseDequeue] (lfq-style queues),
//     [CaseInbox] (wake-integrated SPSC mailbox), [CaseAfter] and
//     [CaseDeadline] (timer arms, the composed-timeout idiom),
//     [CaseExpr] and [CaseEff] (suspended kont computations advanced
//     through a [Dispatcher]).
//   - Clauses: [Set.OnDefault] (nothing ready this round),
//     [Set.OnComplete] (every arm terminal without firing).
//   - Policy: [Set.OnReject] selects whether a guard rejection aborts the
//     invocation ([RejectFatal], the default) or merely exhausts the arm
//     ([RejectExhaust]).
//
// # Resolution
//
// A round polls every still-pending arm once, in generator order. The first
// arm whose guard accepts fires its handler and resolves the set. A round
// with nothing accepted consults the clauses: if every arm is terminal the
// complete clause wins, then the default clause, and with neither the
// invocation fails with [ErrExhausted]; if arms remain pending the default
// clause fires when present, otherwise the engine suspends and retries.
// Exactly one handler runs per invocation. Arms left pending at resolution
// have their release hooks invoked.
//
// # Example
//
//	in := alt.NewInbox[int](8, nil)
//	set := alt.New(
//		alt.CaseInbox(in, func(n int) int { return n }),
//		alt.CaseAfter(time.Second, func(time.Time) int { return -1 }),
//	)
//	out, err := alt.Run(set, alt.Fair)
//	if err == nil && out.Index == 0 {
//		// inbox won: out.Value holds the handler result
//	}
package alt
