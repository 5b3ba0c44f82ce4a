package sharedreservation

import (
	"errors"
	"strings"
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

const MaxNameLength = 255

var (
	ErrEmptyName          = errors.New("shared reservation name cannot be empty")
	ErrNameTooLong        = errors.New("shared reservation name is too long")
	ErrMissingSauna       = errors.New("sauna is required")
	ErrMissingBoat        = errors.New("boat is required")
	ErrAlreadyParticipant = errors.New("boat already participates in this session")
	ErrNotParticipant     = errors.New("boat does not participate in this session")
	ErrSessionStarted     = errors.New("shared session has already started")
)

type Participant struct {
	BoatID   uuid.UUID
	Party    party.Party
	JoinedAt time.Time
}

// SharedReservation is an admin scheduled session any number of boats may join.
type SharedReservation struct {
	id           uuid.UUID
	saunaID      uuid.UUID
	name         string
	timeSlot     slot.TimeSlot
	participants []Participant
	createdAt    time.Time
}

// NewSharedReservation accepts any whole-hour range; sessions are not limited to one hour.
func NewSharedReservation(saunaID uuid.UUID, name string, start, end time.Time, now time.Time) (*SharedReservation, error) {
	if saunaID == uuid.Nil {
		return nil, ErrMissingSauna
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	ts, err := slot.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	return &SharedReservation{
		id:        uuid.New(),
		saunaID:   saunaID,
		name:      name,
		timeSlot:  ts,
		createdAt: now,
	}, nil
}

func ReconstructSharedReservation(
	id, saunaID uuid.UUID,
	name string,
	ts slot.TimeSlot,
	participants []Participant,
	createdAt time.Time,
) *SharedReservation {
	return &SharedReservation{
		id:           id,
		saunaID:      saunaID,
		name:         name,
		timeSlot:     ts,
		participants: participants,
		createdAt:    createdAt,
	}
}

// AddParticipant refuses boats already on the list; daily limits are enforced by the caller.
func (s *SharedReservation) AddParticipant(boatID uuid.UUID, p party.Party, now time.Time) (Participant, error) {
	if boatID == uuid.Nil {
		return Participant{}, ErrMissingBoat
	}
	if p.Total() == 0 {
		return Participant{}, party.ErrEmptyParty
	}
	if !now.Before(s.timeSlot.Start()) {
		return Participant{}, ErrSessionStarted
	}
	if s.HasParticipant(boatID) {
		return Participant{}, ErrAlreadyParticipant
	}

	participant := Participant{BoatID: boatID, Party: p, JoinedAt: now}
	s.participants = append(s.participants, participant)
	return participant, nil
}

func (s *SharedReservation) RemoveParticipant(boatID uuid.UUID) error {
	for i, p := range s.participants {
		if p.BoatID == boatID {
			s.participants = append(s.participants[:i], s.participants[i+1:]...)
			return nil
		}
	}
	return ErrNotParticipant
}

func (s *SharedReservation) HasParticipant(boatID uuid.UUID) bool {
	for _, p := range s.participants {
		if p.BoatID == boatID {
			return true
		}
	}
	return false
}

func (s *SharedReservation) ParticipantCount() int {
	return len(s.participants)
}

// Totals sums the raw adult and kid counts of all participants.
func (s *SharedReservation) Totals() party.Party {
	total := party.Reconstruct(0, 0)
	for _, p := range s.participants {
		total = total.Add(p.Party)
	}
	return total
}

func (s *SharedReservation) ID() uuid.UUID           { return s.id }
func (s *SharedReservation) SaunaID() uuid.UUID      { return s.saunaID }
func (s *SharedReservation) Name() string            { return s.name }
func (s *SharedReservation) TimeSlot() slot.TimeSlot { return s.timeSlot }
func (s *SharedReservation) CreatedAt() time.Time    { return s.createdAt }

func (s *SharedReservation) Participants() []Participant {
	out := make([]Participant, len(s.participants))
	copy(out, s.participants)
	return out
}
