// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alt

import (
	"errors"
	"fmt"
)

// RejectPolicy decides what a guard rejection does to the invocation.
type RejectPolicy uint8

const (
	// RejectFatal aborts the invocation with a *MismatchError: the
	// operation's one-shot result was consumed by a guard that should
	// not have been able to fail. The default.
	RejectFatal RejectPolicy = iota
	// RejectExhaust marks the rejecting arm Exhausted and lets the round
	// continue with the remaining arms.
	RejectExhaust
)

// ErrMismatch is the sentinel matched by errors.Is for guard rejections
// under RejectFatal. The concrete error is always a *MismatchError.
var ErrMismatch = errors.New("alt: guard rejected completed operation")

// ErrExhausted reports that every arm became terminal without firing and
// the set has neither a complete nor a default clause. The caller decided
// against both fallbacks; the condition is surfaced instead of hidden.
var ErrExhausted = errors.New("alt: all arms exhausted and no default or complete clause")

// MismatchError is the fatal guard rejection error: the arm at Index
// completed but its guard rejected the value, which cannot be replayed.
// The handler never ran.
type MismatchError struct {
	Index int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("alt: arm %d: guard rejected completed operation", e.Index)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }
