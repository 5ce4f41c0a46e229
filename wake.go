// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// notifyQuietRounds bounds one Notifier.Wait at a full backoff cycle.
// Arms that complete without waking anyone (deadline arms, plain queues)
// must still be observed, so a quiet Wait returns spuriously and the
// engine re-polls.
const notifyQuietRounds = 32

// Waiter is the suspension side of the wake bridge between the engine and
// whatever schedules it. Run calls Prepare before each round's polls and
// Wait after a fruitless round.
//
// Race freedom: a wake that lands after Prepare must make the following
// Wait return, even if it raced the round's polls — otherwise a ready arm
// could hang the invocation. Spurious returns from Wait are allowed (the
// engine re-polls); lost wakes are not.
type Waiter interface {
	Prepare()
	Wait()
}

// BackoffWaiter suspends with adaptive backoff (iox.Backoff). Every Wait
// returns after a bounded pause, so readiness is re-checked no matter how
// it comes about; the wake contract holds degenerately. The escalation
// state spans one invocation — use a fresh value per Run.
type BackoffWaiter struct {
	bo iox.Backoff
}

// Prepare implements Waiter. No snapshot is needed: Wait is time-bounded.
func (w *BackoffWaiter) Prepare() {}

// Wait implements Waiter: one adaptive backoff pause.
func (w *BackoffWaiter) Wait() { w.bo.Wait() }

// Notifier is an eventcount wake bridge: producers Wake after publishing,
// the selecting side snapshots the epoch before polling and waits for it
// to move. The zero Notifier is ready to use.
//
// Wake may be called from any goroutine. Prepare and Wait belong to the
// single invocation the Notifier is injected into; sharing one Notifier
// as the Waiter of concurrent invocations is a misuse (Wake-side sharing
// is fine and is how one producer feeds many inboxes).
type Notifier struct {
	epoch atomix.Uint32
	seen  uint32
}

// Wake publishes a readiness edge. Call after the completion is
// observable by poll, so a concurrent round either sees the completion or
// sees the epoch move.
func (n *Notifier) Wake() {
	n.epoch.Add(1)
}

// Prepare implements Waiter: snapshot the epoch before the round's polls.
func (n *Notifier) Prepare() {
	n.seen = n.epoch.Load()
}

// Wait implements Waiter: block until a Wake lands after the preceding
// Prepare, backing off adaptively, or return spuriously after a quiet
// full cycle (see notifyQuietRounds).
func (n *Notifier) Wait() {
	var bo iox.Backoff
	for range notifyQuietRounds {
		if n.epoch.Load() != n.seen {
			return
		}
		bo.Wait()
	}
}
