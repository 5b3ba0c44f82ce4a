package reservation

import (
	"errors"
	"fmt"
	"time"
)

// CancellationCutoff is the minimum notice before start for a cancellation.
const CancellationCutoff = 15 * time.Minute

var ErrCannotCancel = errors.New("reservation cannot be cancelled")

type CancelDecision struct {
	CanCancel bool
	Reason    CancelReason
}

// CancelEligibility must be evaluated at the moment of cancellation; the answer
// only ever shrinks as now advances.
func (r *Reservation) CancelEligibility(now time.Time) CancelDecision {
	return EvaluateCancellation(r.status, r.timeSlot.Start(), now)
}

// EvaluateCancellation is the cancellation state machine over status and time until start.
func EvaluateCancellation(status Status, start, now time.Time) CancelDecision {
	switch {
	case status == StatusCancelled:
		return CancelDecision{Reason: ReasonAlreadyCancelled}
	case status != StatusActive:
		return CancelDecision{Reason: ReasonNotActive}
	case !now.Before(start):
		return CancelDecision{Reason: ReasonAlreadyStarted}
	case start.Sub(now) < CancellationCutoff:
		return CancelDecision{Reason: ReasonTooLate}
	default:
		return CancelDecision{CanCancel: true}
	}
}

// Cancel returns a *CancelError wrapping ErrCannotCancel when the decision refuses.
func (r *Reservation) Cancel(now time.Time) error {
	decision := r.CancelEligibility(now)
	if !decision.CanCancel {
		return &CancelError{Reason: decision.Reason}
	}

	cancelledAt := now
	r.status = StatusCancelled
	r.cancelledAt = &cancelledAt
	r.updatedAt = now
	return nil
}

type CancelError struct {
	Reason CancelReason
}

func (e *CancelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCannotCancel.Error(), e.Reason)
}

func (e *CancelError) Unwrap() error {
	return ErrCannotCancel
}

// CancelReasonOf extracts the refusal reason from an error chain.
func CancelReasonOf(err error) (CancelReason, bool) {
	var ce *CancelError
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return ReasonNone, false
}
