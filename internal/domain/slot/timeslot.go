package slot

import (
	"errors"
	"fmt"
	"time"
)

// Length is the fixed width of a bookable sauna slot.
const Length = time.Hour

var ErrInvalidSlot = errors.New("invalid time slot")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot is the single gate every individual reservation passes through.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if err := Validate(start, end); err != nil {
		return TimeSlot{}, err
	}
	return TimeSlot{start: start, end: end}, nil
}

// NewRange accepts any hour-aligned range of whole hours, used by shared sessions.
func NewRange(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, fmt.Errorf("%w: end must be after start", ErrInvalidSlot)
	}
	if !IsHourAligned(start) {
		return TimeSlot{}, fmt.Errorf("%w: start must be on the hour", ErrInvalidSlot)
	}
	if end.Sub(start)%Length != 0 {
		return TimeSlot{}, fmt.Errorf("%w: duration must be whole hours", ErrInvalidSlot)
	}
	return TimeSlot{start: start, end: end}, nil
}

// HourSlotAt builds a one-hour slot without validation.
func HourSlotAt(start time.Time) TimeSlot {
	return TimeSlot{start: start, end: start.Add(Length)}
}

// ReconstructTimeSlot rebuilds a slot loaded from storage.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func Validate(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidSlot)
	}
	if end.Sub(start) != Length {
		return fmt.Errorf("%w: duration must be exactly one hour", ErrInvalidSlot)
	}
	if !IsHourAligned(start) {
		return fmt.Errorf("%w: start must be on the hour", ErrInvalidSlot)
	}
	return nil
}

func IsHourAligned(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FloorToHour zeroes the sub-hour part of t in t's own location.
// time.Truncate is not used: it rounds in absolute time and breaks for half-hour zones.
func FloorToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(ts.start, ts.end, other.start, other.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) Next() TimeSlot {
	return TimeSlot{start: ts.start.Add(Length), end: ts.end.Add(Length)}
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
