//go:build unit

package sauna_test

import (
	"testing"
	"time"

	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(2025, 7, 3, hour, minute, 0, 0, time.UTC)
}

func newSauna(t *testing.T, heatingHours int) *sauna.Sauna {
	t.Helper()
	s, err := sauna.NewSauna(uuid.New(), uuid.New(), "Rantasauna", heatingHours, false)
	require.NoError(t, err)
	return s
}

func hourWindow(start time.Time) sauna.Window {
	return sauna.Window{Start: start, End: start.Add(time.Hour)}
}

func TestCalculateNextAvailable(t *testing.T) {
	testCases := []struct {
		name         string
		heating      int
		current      *sauna.Window
		future       []sauna.Window
		now          time.Time
		expectStart  time.Time
		expectReason sauna.Reason
	}{
		{
			name:         "cold sauna uses heating lead time",
			heating:      2,
			now:          clockAt(14, 30),
			expectStart:  clockAt(16, 0),
			expectReason: sauna.ReasonHeating,
		},
		{
			name:         "zero heating time starts at top of current hour",
			heating:      0,
			now:          clockAt(14, 59),
			expectStart:  clockAt(14, 0),
			expectReason: sauna.ReasonHeating,
		},
		{
			name:         "current reservation ending soon skips following slot",
			heating:      2,
			current:      ptrWindow(hourWindow(clockAt(14, 0))),
			now:          clockAt(14, 50),
			expectStart:  clockAt(16, 0),
			expectReason: sauna.ReasonBuffer,
		},
		{
			name:         "exactly fifteen minutes left counts as buffer",
			heating:      2,
			current:      ptrWindow(hourWindow(clockAt(14, 0))),
			now:          clockAt(14, 45),
			expectStart:  clockAt(16, 0),
			expectReason: sauna.ReasonBuffer,
		},
		{
			name:         "current reservation with time left offers its end",
			heating:      2,
			current:      ptrWindow(hourWindow(clockAt(14, 0))),
			now:          clockAt(14, 44),
			expectStart:  clockAt(15, 0),
			expectReason: sauna.ReasonNextFree,
		},
		{
			name:         "current reservation not covering now falls back to heating",
			heating:      1,
			current:      ptrWindow(hourWindow(clockAt(10, 0))),
			now:          clockAt(14, 10),
			expectStart:  clockAt(15, 0),
			expectReason: sauna.ReasonHeating,
		},
		{
			name:    "walks past conflicts and keeps reason",
			heating: 1,
			now:     clockAt(14, 10),
			future: []sauna.Window{
				hourWindow(clockAt(15, 0)),
				hourWindow(clockAt(16, 0)),
				hourWindow(clockAt(18, 0)),
			},
			expectStart:  clockAt(17, 0),
			expectReason: sauna.ReasonHeating,
		},
		{
			name:    "next free slot walks past back to back bookings",
			heating: 3,
			current: ptrWindow(hourWindow(clockAt(14, 0))),
			now:     clockAt(14, 5),
			future: []sauna.Window{
				hourWindow(clockAt(15, 0)),
				{Start: clockAt(16, 0), End: clockAt(19, 0)},
			},
			expectStart:  clockAt(19, 0),
			expectReason: sauna.ReasonNextFree,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSauna(t, tc.heating)

			got, err := sauna.CalculateNextAvailable(s, tc.current, tc.future, tc.now)

			require.NoError(t, err)
			assert.Equal(t, tc.expectStart, got.Slot.Start())
			assert.Equal(t, tc.expectStart.Add(time.Hour), got.Slot.End())
			assert.Equal(t, tc.expectReason, got.Reason)
		})
	}
}

func TestCalculateNextAvailable_HeatingRuleAnyMinute(t *testing.T) {
	for heating := 0; heating <= 4; heating++ {
		for minute := 0; minute < 60; minute += 7 {
			s := newSauna(t, heating)
			now := clockAt(9, minute)

			got, err := sauna.CalculateNextAvailable(s, nil, nil, now)

			require.NoError(t, err)
			assert.Equal(t, clockAt(9, 0).Add(time.Duration(heating)*time.Hour), got.Slot.Start())
		}
	}
}

func TestCalculateNextAvailable_BufferRule(t *testing.T) {
	current := hourWindow(clockAt(20, 0))
	for second := 1; second < 15*60; second += 61 {
		now := current.End.Add(-time.Duration(second) * time.Second)
		s := newSauna(t, 2)

		got, err := sauna.CalculateNextAvailable(s, &current, nil, now)

		require.NoError(t, err)
		assert.Equal(t, sauna.ReasonBuffer, got.Reason)
		assert.False(t, got.Slot.Start().Before(current.End.Add(time.Hour)))
	}
}

func TestCalculateNextAvailable_NeverOverlapsFuture(t *testing.T) {
	s := newSauna(t, 1)
	now := clockAt(8, 20)
	future := []sauna.Window{
		hourWindow(clockAt(9, 0)),
		hourWindow(clockAt(10, 0)),
		{Start: clockAt(11, 30), End: clockAt(12, 30)},
		hourWindow(clockAt(14, 0)),
	}

	for range 5 {
		got, err := sauna.CalculateNextAvailable(s, nil, future, now)
		require.NoError(t, err)

		for _, w := range future {
			assert.False(t, slot.Overlaps(got.Slot.Start(), got.Slot.End(), w.Start, w.End),
				"slot %s overlaps %v", got.Slot, w)
		}
		future = append(future, sauna.WindowOf(got.Slot))
	}
}

func TestCalculator_Lookahead(t *testing.T) {
	s := newSauna(t, 0)
	now := clockAt(0, 0)

	full := make([]sauna.Window, 0, 10)
	for h := range 10 {
		full = append(full, hourWindow(now.Add(time.Duration(h)*time.Hour)))
	}

	t.Run("gives up past the cap", func(t *testing.T) {
		_, err := sauna.Calculator{MaxLookahead: 5}.NextAvailable(s, nil, full, now)
		assert.ErrorIs(t, err, sauna.ErrNoSlotWithinLookahead)
	})

	t.Run("finds slot inside the cap", func(t *testing.T) {
		got, err := sauna.Calculator{MaxLookahead: 10}.NextAvailable(s, nil, full, now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(10*time.Hour), got.Slot.Start())
	})

	t.Run("zero value uses default cap", func(t *testing.T) {
		got, err := sauna.Calculator{}.NextAvailable(s, nil, full, now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(10*time.Hour), got.Slot.Start())
	})
}

func ptrWindow(w sauna.Window) *sauna.Window {
	return &w
}
