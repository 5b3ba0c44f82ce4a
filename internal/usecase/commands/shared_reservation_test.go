//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/sharedreservation"
	"sauna-reservation/internal/domain/slot"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSharedReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), b.SaunaID, b.StartTime, b.EndTime()).Return(nil, nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, s *sharedreservation.SharedReservation) (uuid.UUID, error) {
				assert.Equal(t, b.Name, s.Name())
				assert.Equal(t, 3*time.Hour, s.TimeSlot().Duration())
				return s.ID(), nil
			})

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		result, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.SharedReservationID)
	})

	t.Run("error: members cannot create sessions", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), memberOf(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: misaligned end", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil)
		req := b.BuildCreateRequestDTO()
		req.EndTime = req.EndTime.Add(-30 * time.Minute)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, req, admin())

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: start in the past", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.StartTime.Add(time.Hour)), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, sharedreservation.ErrSessionStarted)
	})

	t.Run("error: overlaps an individual booking", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), b.SaunaID, gomock.Any(), gomock.Any()).Return([]sauna.Window{
			sauna.WindowOf(slot.HourSlotAt(b.StartTime.Add(time.Hour))),
		}, nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrReservationConflict))
	})

	t.Run("success: sauna row is locked before occupancy is read", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		gomock.InOrder(
			m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil),
			m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil),
			m.reads.EXPECT().SaunaOccupancy(gomock.Any(), b.SaunaID, b.StartTime, b.EndTime()).Return(nil, nil),
			m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil),
		)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		require.NoError(t, err)
	})

	t.Run("error: unknown sauna", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(infra.WrapRepoErr("sauna not found", nil, infra.KindNotFound))

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrSaunaNotFound))
	})

	t.Run("error: overlapping session committed concurrently", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), b.SaunaID).Return(b.BuildSauna(2), nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), b.SaunaID, b.StartTime, b.EndTime()).Return(nil, nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil,
			infra.WrapRepoErr("failed to create shared reservation", &pgconn.PgError{Code: "23P01", ConstraintName: "shared_reservations_no_overlap"}))

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		_, err := uc.CreateSharedReservation(ctx, b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrReservationConflict))
	})
}

func TestSharedReservationCommands_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder().WithParticipant(uuid.New(), 2, 0)
		boatID := uuid.New()
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), boatID, b.IslandID, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.sessions.EXPECT().AddParticipant(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, _ uuid.UUID, p sharedreservation.Participant) error {
				assert.Equal(t, boatID, p.BoatID)
				assert.Equal(t, 3, p.Party.Total())
				assert.Equal(t, b.Now, p.JoinedAt)
				return nil
			})

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 2, 1), memberOf(boatID))

		require.NoError(t, err)
	})

	t.Run("error: another boat", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(uuid.New(), 2, 0), memberOf(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: empty party", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		boatID := uuid.New()

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 0, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: session not found", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		boatID := uuid.New()
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(nil, infra.WrapRepoErr("shared reservation not found", nil, infra.KindNotFound))

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 1, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrSharedReservationNotFound))
	})

	t.Run("error: already on the list", func(t *testing.T) {
		m := newUoWMocks(t)
		boatID := uuid.New()
		b := builder.NewSharedReservationBuilder().WithParticipant(boatID, 2, 0)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 1, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrAlreadyParticipant))
	})

	t.Run("error: boat already has an individual reservation that day", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		boatID := uuid.New()
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), boatID, b.IslandID, gomock.Any(), gomock.Any()).Return([]dailylimit.Commitment{
			dailylimit.Individual{ReservationID: uuid.New(), Sauna: uuid.New(), TimeSlot: slot.HourSlotAt(b.StartTime.Add(-4 * time.Hour))},
		}, nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 1, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrDailyLimitReached))
	})

	t.Run("error: session already started", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		boatID := uuid.New()
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.StartTime.Add(30*time.Minute)), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 1, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, sharedreservation.ErrSessionStarted)
	})

	t.Run("error: concurrent join hits unique key", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()
		boatID := uuid.New()
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), boatID).Return(nil)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.sessions.EXPECT().AddParticipant(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).
			Return(infra.WrapRepoErr("failed to add participant", &pgconn.PgError{Code: "23505"}))

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.JoinSharedReservation(ctx, b.ID, b.BuildJoinRequestDTO(boatID, 1, 0), memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrAlreadyParticipant))
	})
}

func TestSharedReservationCommands_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newUoWMocks(t)
		boatID := uuid.New()
		b := builder.NewSharedReservationBuilder().WithParticipant(boatID, 2, 0)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		m.sessions.EXPECT().RemoveParticipant(gomock.Any(), gomock.Any(), b.ID, boatID).Return(nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		require.NoError(t, uc.LeaveSharedReservation(ctx, b.ID, boatID, memberOf(boatID)))
	})

	t.Run("error: not on the list", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder().WithParticipant(uuid.New(), 2, 0)
		boatID := uuid.New()
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.LeaveSharedReservation(ctx, b.ID, boatID, memberOf(boatID))

		assert.True(t, errs.Is(err, errs.ErrNotParticipant))
	})

	t.Run("error: after start", func(t *testing.T) {
		m := newUoWMocks(t)
		boatID := uuid.New()
		b := builder.NewSharedReservationBuilder().WithParticipant(boatID, 2, 0)
		m.reads.EXPECT().SharedReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.StartTime), time.UTC)
		err := uc.LeaveSharedReservation(ctx, b.ID, boatID, admin())

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: member leaving for another boat", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewSharedReservationBuilder()

		uc := commands.NewSharedReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.LeaveSharedReservation(ctx, b.ID, uuid.New(), memberOf(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}
