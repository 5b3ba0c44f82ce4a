//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/slot"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/internal/usecase/shared"
	"sauna-reservation/tests/common/builder"
	sharedmock "sauna-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uowMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	sessions     *sharedmock.MockSharedReservationRepository
	boats        *sharedmock.MockBoatRepository
	saunas       *sharedmock.MockSaunaRepository
}

// newUoWMocks wires a unit of work whose Within runs the callback against one mocked Tx.
func newUoWMocks(t *testing.T) uowMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := uowMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		sessions:     sharedmock.NewMockSharedReservationRepository(ctrl),
		boats:        sharedmock.NewMockBoatRepository(ctrl),
		saunas:       sharedmock.NewMockSaunaRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().SharedReservations().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Boats().Return(m.boats).AnyTimes()
	m.tx.EXPECT().Saunas().Return(m.saunas).AnyTimes()
	return m
}

func memberOf(boatID uuid.UUID) shared.Actor {
	id := boatID
	return shared.Actor{UserID: uuid.New(), BoatID: &id, ClubID: uuid.New(), Role: shared.RoleMember}
}

func admin() shared.Actor {
	return shared.Actor{UserID: uuid.New(), ClubID: uuid.New(), Role: shared.RoleAdmin}
}

func TestReservationCommands_CreateReservation(t *testing.T) {
	ctx := context.Background()

	type fixture struct {
		b *builder.ReservationBuilder
		s *sauna.Sauna
	}
	setup := func(t *testing.T, heating int) fixture {
		b := builder.NewReservationBuilder()
		s := sauna.ReconstructSauna(b.SaunaID, b.IslandID, b.SaunaName, heating, false, b.Now, b.Now)
		return fixture{b: b, s: s}
	}

	t.Run("success", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)

		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), f.b.BoatID, f.b.IslandID, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), f.b.SaunaID, f.b.Now, f.b.EndTime()).Return(nil, nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, res *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(t, f.b.StartTime, res.TimeSlot().Start())
				assert.Equal(t, reservation.StatusActive, res.Status())
				return res.ID(), nil
			})

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		result, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ReservationID)
	})

	t.Run("error: member books for another boat", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: two hour slot", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		req := f.b.BuildCreateRequestDTO()
		req.EndTime = req.StartTime.Add(2 * time.Hour)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, req, memberOf(f.b.BoatID))

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, slot.ErrInvalidSlot)
	})

	t.Run("error: unknown sauna", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(infra.WrapRepoErr("sauna not found", nil, infra.KindNotFound))

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrSaunaNotFound))
	})

	t.Run("success: sauna lock precedes boat lock and occupancy read", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 0)
		gomock.InOrder(
			m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil),
			m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil),
			m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil),
			m.reads.EXPECT().BoatCommitments(gomock.Any(), f.b.BoatID, f.b.IslandID, gomock.Any(), gomock.Any()).Return(nil, nil),
			m.reads.EXPECT().SaunaOccupancy(gomock.Any(), f.b.SaunaID, f.b.Now, f.b.EndTime()).Return(nil, nil),
			m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil),
		)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		require.NoError(t, err)
	})

	t.Run("error: unknown boat", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(infra.WrapRepoErr("boat not found", nil, infra.KindNotFound))

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), admin())

		assert.True(t, errs.Is(err, errs.ErrBoatNotFound))
	})

	t.Run("error: daily limit reached by shared participation", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), f.b.BoatID, f.b.IslandID, gomock.Any(), gomock.Any()).Return([]dailylimit.Commitment{
			dailylimit.Shared{SharedReservationID: uuid.New(), Sauna: uuid.New(), TimeSlot: slot.HourSlotAt(f.b.StartTime.Add(-3 * time.Hour))},
		}, nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		assert.True(t, errs.Is(err, errs.ErrDailyLimitReached))
		assert.ErrorIs(t, err, dailylimit.ErrLimitReached)
	})

	t.Run("error: overlaps existing booking", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), f.b.SaunaID, gomock.Any(), gomock.Any()).Return([]sauna.Window{
			{Start: f.b.StartTime.Add(-time.Hour), End: f.b.StartTime.Add(2 * time.Hour)},
		}, nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		assert.True(t, errs.Is(err, errs.ErrReservationConflict))
	})

	t.Run("error: cold sauna cannot heat in time", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 8)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), f.b.SaunaID, gomock.Any(), gomock.Any()).Return(nil, nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		assert.True(t, errs.Is(err, errs.ErrInsufficientLeadTime))
	})

	t.Run("success: warm sauna skips heating", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 8)
		f.b.WithStart(time.Date(2025, 7, 3, 13, 0, 0, 0, time.UTC))
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), f.b.SaunaID, gomock.Any(), gomock.Any()).Return([]sauna.Window{
			{Start: time.Date(2025, 7, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 7, 3, 13, 0, 0, 0, time.UTC)},
		}, nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		require.NoError(t, err)
	})

	t.Run("error: exclusion constraint lost the race", func(t *testing.T) {
		m := newUoWMocks(t)
		f := setup(t, 2)
		m.saunas.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.SaunaID).Return(nil)
		m.reads.EXPECT().SaunaByID(gomock.Any(), f.b.SaunaID).Return(f.s, nil)
		m.boats.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), f.b.BoatID).Return(nil)
		m.reads.EXPECT().BoatCommitments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reads.EXPECT().SaunaOccupancy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{Code: "23P01"}))

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(f.b.Now), time.UTC)
		_, err := uc.CreateReservation(ctx, f.b.BuildCreateRequestDTO(), memberOf(f.b.BoatID))

		assert.True(t, errs.Is(err, errs.ErrReservationConflict))
	})
}

func TestReservationCommands_CancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner cancels ahead of cutoff", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewReservationBuilder()
		res := b.BuildReconstructed()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(res, nil)
		m.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res).DoAndReturn(
			func(_ context.Context, _ any, r *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusCancelled, r.Status())
				return nil
			})

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		require.NoError(t, uc.CancelReservation(ctx, b.ID, memberOf(b.BoatID)))
	})

	t.Run("error: other member", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewReservationBuilder()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(b.Now), time.UTC)
		err := uc.CancelReservation(ctx, b.ID, memberOf(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: too late keeps reason", func(t *testing.T) {
		m := newUoWMocks(t)
		b := builder.NewReservationBuilder()
		m.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildReconstructed(), nil)

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(b.StartTime.Add(-5*time.Minute)), time.UTC)
		err := uc.CancelReservation(ctx, b.ID, admin())

		assert.True(t, errs.Is(err, errs.ErrCannotCancel))
		reason, ok := reservation.CancelReasonOf(err)
		assert.True(t, ok)
		assert.Equal(t, reservation.ReasonTooLate, reason)
	})

	t.Run("error: not found", func(t *testing.T) {
		m := newUoWMocks(t)
		m.reads.EXPECT().ReservationByID(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(time.Now()), time.UTC)
		err := uc.CancelReservation(ctx, uuid.New(), admin())

		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}

func TestReservationCommands_CompleteEnded(t *testing.T) {
	m := newUoWMocks(t)
	now := time.Date(2025, 7, 3, 20, 0, 0, 0, time.UTC)
	m.reservations.EXPECT().CompleteEnded(gomock.Any(), gomock.Any(), now).Return(int64(4), nil)

	uc := commands.NewReservationUseCase(m.uow, clock.NewMockClock(now), time.UTC)
	n, err := uc.CompleteEnded(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
