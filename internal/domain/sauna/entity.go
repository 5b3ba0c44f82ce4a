package sauna

import (
	"errors"
	"strings"
	"time"

	"sauna-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptySaunaName      = errors.New("sauna name cannot be empty")
	ErrSaunaNameTooLong    = errors.New("sauna name is too long (max 255 characters)")
	ErrNegativeHeatingTime = errors.New("heating time cannot be negative")
	ErrHeatingTimeTooLong  = errors.New("heating time cannot exceed 24 hours")
)

const (
	MaxSaunaNameLength = 255
	MaxHeatingHours    = 24
)

type Sauna struct {
	id               uuid.UUID
	islandID         uuid.UUID
	name             string
	heatingTimeHours int
	autoClubSauna    bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSauna(id, islandID uuid.UUID, name string, heatingTimeHours int, autoClubSauna bool) (*Sauna, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateHeatingTime(heatingTimeHours); err != nil {
		return nil, err
	}

	return &Sauna{
		id:               id,
		islandID:         islandID,
		name:             strings.TrimSpace(name),
		heatingTimeHours: heatingTimeHours,
		autoClubSauna:    autoClubSauna,
	}, nil
}

func ReconstructSauna(
	id, islandID uuid.UUID,
	name string,
	heatingTimeHours int,
	autoClubSauna bool,
	createdAt, updatedAt time.Time,
) *Sauna {
	return &Sauna{
		id:               id,
		islandID:         islandID,
		name:             name,
		heatingTimeHours: heatingTimeHours,
		autoClubSauna:    autoClubSauna,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// EarliestStart is the first slot start a cold sauna can serve.
func (s *Sauna) EarliestStart(now time.Time) time.Time {
	return slot.FloorToHour(now).Add(s.HeatingTime())
}

func (s *Sauna) HeatingTime() time.Duration {
	return time.Duration(s.heatingTimeHours) * time.Hour
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptySaunaName
	}
	if len(name) > MaxSaunaNameLength {
		return ErrSaunaNameTooLong
	}
	return nil
}

func validateHeatingTime(hours int) error {
	if hours < 0 {
		return ErrNegativeHeatingTime
	}
	if hours > MaxHeatingHours {
		return ErrHeatingTimeTooLong
	}
	return nil
}

func (s *Sauna) ID() uuid.UUID              { return s.id }
func (s *Sauna) IslandID() uuid.UUID        { return s.islandID }
func (s *Sauna) Name() string               { return s.name }
func (s *Sauna) HeatingTimeHours() int      { return s.heatingTimeHours }
func (s *Sauna) AutoClubSaunaEnabled() bool { return s.autoClubSauna }
func (s *Sauna) CreatedAt() time.Time       { return s.createdAt }
func (s *Sauna) UpdatedAt() time.Time       { return s.updatedAt }
