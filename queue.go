// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

// Dequeuer is the consumer side of a non-blocking queue, satisfied
// structurally by *lfq.SPSC[T] among others. Dequeue returns
// iox.ErrWouldBlock while the queue is empty.
type Dequeuer[T any] interface {
	Dequeue() (T, error)
}

// CaseDequeue creates an arm that fires when q yields an element. The
// queue's consumer discipline carries over: for SPSC queues the selecting
// task must be the only consumer while the invocation runs.
func CaseDequeue[T, R any](q Dequeuer[T], handler func(T) R) Arm[R] {
	return Case(q.Dequeue, handler)
}
