package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"sort"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/infra/readstore"
	"sauna-reservation/internal/infra/repository"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &commandReads{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo       shared.ReservationRepository
	sharedReservationRepo shared.SharedReservationRepository
	boatRepo              shared.BoatRepository
	saunaRepo             shared.SaunaRepository
	commandReads          shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) SharedReservations() shared.SharedReservationRepository {
	if t.sharedReservationRepo == nil {
		t.sharedReservationRepo = repository.NewSharedReservationRepository(t.uow.q)
	}
	return t.sharedReservationRepo
}

func (t *pgTx) Boats() shared.BoatRepository {
	if t.boatRepo == nil {
		t.boatRepo = repository.NewBoatRepository(t.uow.q)
	}
	return t.boatRepo
}

func (t *pgTx) Saunas() shared.SaunaRepository {
	if t.saunaRepo == nil {
		t.saunaRepo = repository.NewSaunaRepository(t.uow.q)
	}
	return t.saunaRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	saunaStore       *readstore.SaunaReadStore
	reservationStore *readstore.ReservationReadStore
	sharedStore      *readstore.SharedReservationReadStore
	commitmentStore  *readstore.CommitmentReadStore
}

func (r *commandReads) saunas() *readstore.SaunaReadStore {
	if r.saunaStore == nil {
		r.saunaStore = readstore.NewSaunaReadStore(r.uow.q, r.dbtx)
	}
	return r.saunaStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) sharedReservations() *readstore.SharedReservationReadStore {
	if r.sharedStore == nil {
		r.sharedStore = readstore.NewSharedReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.sharedStore
}

func (r *commandReads) SaunaByID(ctx context.Context, id uuid.UUID) (*sauna.Sauna, error) {
	return r.saunas().FindByID(ctx, id)
}

func (r *commandReads) AutoClubSaunas(ctx context.Context) ([]*sauna.Sauna, error) {
	return r.saunas().ListAutoClubSaunas(ctx)
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservations().FindByID(ctx, id)
}

func (r *commandReads) SharedReservationByID(ctx context.Context, id uuid.UUID) (*shared.SharedReservationSnapshot, error) {
	return r.sharedReservations().FindByID(ctx, id)
}

func (r *commandReads) SharedReservationExistsAt(ctx context.Context, saunaID uuid.UUID, start time.Time) (bool, error) {
	return r.sharedReservations().ExistsAt(ctx, saunaID, start)
}

func (r *commandReads) BoatCommitments(ctx context.Context, boatID, islandID uuid.UUID, dayStart, dayEnd time.Time) ([]dailylimit.Commitment, error) {
	if r.commitmentStore == nil {
		r.commitmentStore = readstore.NewCommitmentReadStore(r.uow.q, r.dbtx)
	}
	return r.commitmentStore.BoatCommitments(ctx, boatID, islandID, dayStart, dayEnd)
}

func (r *commandReads) SaunaOccupancy(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]sauna.Window, error) {
	individual, err := r.reservations().ListActiveInRange(ctx, saunaID, from, to)
	if err != nil {
		return nil, err
	}
	sessions, err := r.sharedReservations().ListInRange(ctx, saunaID, from, to)
	if err != nil {
		return nil, err
	}

	windows := make([]sauna.Window, 0, len(individual)+len(sessions))
	for _, o := range individual {
		windows = append(windows, sauna.Window{Start: o.Start, End: o.End})
	}
	for _, o := range sessions {
		windows = append(windows, sauna.Window{Start: o.Start, End: o.End})
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
	return windows, nil
}
