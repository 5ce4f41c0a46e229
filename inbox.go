// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/lfq"
)

// Inbox is a bounded single-producer single-consumer mailbox whose
// producer wakes the selecting side through a shared Notifier. Transport
// is a lock-free SPSC ring from lfq; the queue is embedded as a value so
// an Inbox is a single allocation plus its ring buffer.
//
// One producer goroutine calls Put; the invocation selecting on the
// inbox is the only consumer. Several inboxes may share one Notifier,
// which is how one invocation waits on many producers.
type Inbox[T any] struct {
	q    lfq.SPSC[T]
	n    *Notifier
	slot T
}

// NewInbox creates an inbox with the given capacity (rounded up to a
// power of two by lfq, minimum 2). A nil Notifier is allowed: the inbox
// then relies on the consumer's own waiting discipline, e.g. a
// BackoffWaiter.
func NewInbox[T any](capacity int, n *Notifier) *Inbox[T] {
	in := &Inbox[T]{n: n}
	in.q.Init(capacity)
	return in
}

// Put enqueues v and wakes the consumer. Non-blocking: returns
// iox.ErrWouldBlock when the inbox is full, in which case no wake is
// published. The enqueue happens before the wake, so a consumer woken by
// Put observes the element.
// slot staging: Enqueue takes *T; a struct field avoids the per-call
// heap escape of &v. Safe under the single-producer discipline.
func (in *Inbox[T]) Put(v T) error {
	in.slot = v
	if err := in.q.Enqueue(&in.slot); err != nil {
		return err
	}
	if in.n != nil {
		in.n.Wake()
	}
	return nil
}

// Get dequeues the oldest element. Non-blocking: returns
// iox.ErrWouldBlock while the inbox is empty.
func (in *Inbox[T]) Get() (T, error) {
	return in.q.Dequeue()
}

// CaseInbox creates an arm that fires when the inbox yields an element.
// Pair with Set.Via(in's Notifier) so producer-side Put suspends and
// wakes the invocation instead of leaving it backing off.
func CaseInbox[T, R any](in *Inbox[T], handler func(T) R) Arm[R] {
	return Case(in.Get, handler)
}
