package sauna

import (
	"errors"
	"time"

	"sauna-reservation/internal/domain/slot"
)

const (
	// DefaultMaxLookahead bounds the forward walk to two days of hourly steps.
	DefaultMaxLookahead = 48

	// ImminentEndBuffer: a reservation ending sooner than this pushes the next slot one hour further.
	ImminentEndBuffer = 15 * time.Minute
)

var ErrNoSlotWithinLookahead = errors.New("no free slot within lookahead window")

type Reason string

const (
	ReasonNextFree Reason = "next_free"
	ReasonBuffer   Reason = "buffer"
	ReasonHeating  Reason = "heating"
)

func (r Reason) String() string {
	return string(r)
}

// Window is an occupied interval of the sauna, taken from an active reservation or a shared session.
type Window struct {
	Start time.Time
	End   time.Time
}

func WindowOf(ts slot.TimeSlot) Window {
	return Window{Start: ts.Start(), End: ts.End()}
}

func (w Window) Covers(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type NextAvailable struct {
	Slot   slot.TimeSlot
	Reason Reason
}

type Calculator struct {
	MaxLookahead int
}

// CalculateNextAvailable uses DefaultMaxLookahead.
func CalculateNextAvailable(s *Sauna, current *Window, future []Window, now time.Time) (NextAvailable, error) {
	return Calculator{}.NextAvailable(s, current, future, now)
}

// NextAvailable walks forward from the candidate slot one hour at a time until
// the slot is clear of every window in future. The reason of the starting
// candidate is kept while walking.
func (c Calculator) NextAvailable(s *Sauna, current *Window, future []Window, now time.Time) (NextAvailable, error) {
	candidate, reason := c.startingCandidate(s, current, now)

	limit := c.MaxLookahead
	if limit <= 0 {
		limit = DefaultMaxLookahead
	}

	for step := 0; step <= limit; step++ {
		if !overlapsAny(candidate, future) {
			return NextAvailable{Slot: candidate, Reason: reason}, nil
		}
		candidate = candidate.Next()
	}

	return NextAvailable{}, ErrNoSlotWithinLookahead
}

func (c Calculator) startingCandidate(s *Sauna, current *Window, now time.Time) (slot.TimeSlot, Reason) {
	if current != nil && current.Covers(now) {
		if current.End.Sub(now) > ImminentEndBuffer {
			return slot.HourSlotAt(current.End), ReasonNextFree
		}
		return slot.HourSlotAt(current.End.Add(slot.Length)), ReasonBuffer
	}
	return slot.HourSlotAt(s.EarliestStart(now)), ReasonHeating
}

func overlapsAny(candidate slot.TimeSlot, windows []Window) bool {
	for _, w := range windows {
		if slot.Overlaps(candidate.Start(), candidate.End(), w.Start, w.End) {
			return true
		}
	}
	return false
}

// MeetsHeatingLeadTime reports whether a slot starting at start can be served:
// either the sauna has time to heat from cold, or a window occupying the sauna
// right now keeps it warm until start.
func (s *Sauna) MeetsHeatingLeadTime(start, now time.Time, occupied []Window) bool {
	if !start.Before(s.EarliestStart(now)) {
		return true
	}
	for _, w := range occupied {
		if w.Covers(now) && !start.Before(w.End) {
			return true
		}
	}
	return false
}
