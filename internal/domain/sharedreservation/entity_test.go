//go:build unit

package sharedreservation_test

import (
	"strings"
	"testing"
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/sharedreservation"
	"sauna-reservation/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sessionStart = time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC)
	beforeStart  = sessionStart.Add(-2 * time.Hour)
)

func newSession(t *testing.T) *sharedreservation.SharedReservation {
	t.Helper()
	s, err := sharedreservation.NewSharedReservation(uuid.New(), "Club sauna (high season)", sessionStart, sessionStart.Add(3*time.Hour), beforeStart)
	require.NoError(t, err)
	return s
}

func mustParty(t *testing.T, adults, kids int) party.Party {
	t.Helper()
	p, err := party.New(adults, kids)
	require.NoError(t, err)
	return p
}

func TestNewSharedReservation(t *testing.T) {
	saunaID := uuid.New()

	testCases := []struct {
		name    string
		saunaID uuid.UUID
		title   string
		start   time.Time
		end     time.Time
		errIs   error
	}{
		{name: "three hour session", saunaID: saunaID, title: "Club sauna", start: sessionStart, end: sessionStart.Add(3 * time.Hour)},
		{name: "one hour session", saunaID: saunaID, title: "Club sauna", start: sessionStart, end: sessionStart.Add(time.Hour)},
		{name: "missing sauna", saunaID: uuid.Nil, title: "Club sauna", start: sessionStart, end: sessionStart.Add(time.Hour), errIs: sharedreservation.ErrMissingSauna},
		{name: "blank name", saunaID: saunaID, title: "   ", start: sessionStart, end: sessionStart.Add(time.Hour), errIs: sharedreservation.ErrEmptyName},
		{name: "long name", saunaID: saunaID, title: strings.Repeat("a", sharedreservation.MaxNameLength+1), start: sessionStart, end: sessionStart.Add(time.Hour), errIs: sharedreservation.ErrNameTooLong},
		{name: "half hour session", saunaID: saunaID, title: "Club sauna", start: sessionStart, end: sessionStart.Add(90 * time.Minute), errIs: slot.ErrInvalidSlot},
		{name: "misaligned start", saunaID: saunaID, title: "Club sauna", start: sessionStart.Add(10 * time.Minute), end: sessionStart.Add(70 * time.Minute), errIs: slot.ErrInvalidSlot},
		{name: "end before start", saunaID: saunaID, title: "Club sauna", start: sessionStart, end: sessionStart.Add(-time.Hour), errIs: slot.ErrInvalidSlot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := sharedreservation.NewSharedReservation(tc.saunaID, tc.title, tc.start, tc.end, beforeStart)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, actual.TimeSlot().Start())
			assert.Equal(t, tc.end, actual.TimeSlot().End())
			assert.Equal(t, 0, actual.ParticipantCount())
		})
	}
}

func TestParticipants(t *testing.T) {
	t.Run("success: totals sum raw counts", func(t *testing.T) {
		s := newSession(t)
		_, err := s.AddParticipant(uuid.New(), mustParty(t, 2, 1), beforeStart)
		require.NoError(t, err)
		_, err = s.AddParticipant(uuid.New(), mustParty(t, 3, 0), beforeStart)
		require.NoError(t, err)

		assert.Equal(t, 2, s.ParticipantCount())
		assert.Equal(t, 5, s.Totals().Adults())
		assert.Equal(t, 1, s.Totals().Kids())
	})

	t.Run("error: duplicate boat", func(t *testing.T) {
		s := newSession(t)
		boatID := uuid.New()
		_, err := s.AddParticipant(boatID, mustParty(t, 1, 0), beforeStart)
		require.NoError(t, err)

		_, err = s.AddParticipant(boatID, mustParty(t, 2, 0), beforeStart)

		assert.ErrorIs(t, err, sharedreservation.ErrAlreadyParticipant)
		assert.Equal(t, 1, s.ParticipantCount())
	})

	t.Run("error: empty party", func(t *testing.T) {
		s := newSession(t)
		_, err := s.AddParticipant(uuid.New(), party.Reconstruct(0, 0), beforeStart)
		assert.ErrorIs(t, err, party.ErrEmptyParty)
	})

	t.Run("error: session started", func(t *testing.T) {
		s := newSession(t)
		_, err := s.AddParticipant(uuid.New(), mustParty(t, 1, 0), sessionStart)
		assert.ErrorIs(t, err, sharedreservation.ErrSessionStarted)
	})

	t.Run("remove participant", func(t *testing.T) {
		s := newSession(t)
		boatID := uuid.New()
		_, err := s.AddParticipant(boatID, mustParty(t, 1, 0), beforeStart)
		require.NoError(t, err)

		require.NoError(t, s.RemoveParticipant(boatID))
		assert.False(t, s.HasParticipant(boatID))
		assert.ErrorIs(t, s.RemoveParticipant(boatID), sharedreservation.ErrNotParticipant)
	})
}
