//go:build e2e

package reservation_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"sauna-reservation/internal/handler/dto/request"
	"sauna-reservation/tests/common/dbtest"
	"sauna-reservation/tests/common/httptest"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// race fires every request at once and returns the status codes in argument order.
func (s *ReservationSuite) race(requests ...func() int) []int {
	codes := make([]int, len(requests))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, do := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			codes[i] = do()
		}()
	}
	close(start)
	wg.Wait()
	return codes
}

func countStatus(codes []int, status int) int {
	n := 0
	for _, c := range codes {
		if c == status {
			n++
		}
	}
	return n
}

func (s *ReservationSuite) TestConcurrentOccupancy() {
	const rounds = 5

	s.Run("Error case: only one of two overlapping sessions is created", func() {
		t := s.T()
		admin := s.jwt.AdminToken(t, dbtest.DefaultClubID)
		start := tomorrowAt(17)

		for range rounds {
			f := s.newFixture(0)
			open := func(from time.Time, hours int) func() int {
				return func() int {
					return httptest.PerformRequest(t, s.Router, http.MethodPost, sharedReservationsURL, request.CreateSharedReservationRequest{
						SaunaID:   f.saunaID,
						Name:      "Club sauna",
						StartTime: from,
						EndTime:   from.Add(time.Duration(hours) * time.Hour),
					}, admin).Code
				}
			}

			codes := s.race(open(start, 3), open(start.Add(time.Hour), 1))

			require.Equal(t, 1, countStatus(codes, http.StatusCreated), "codes: %v", codes)
			require.Equal(t, 1, countStatus(codes, http.StatusConflict), "codes: %v", codes)
		}
		require.Equal(t, rounds, dbtest.CountRows(t, s.DB, "shared_reservations"))
	})

	s.Run("Error case: a session and an individual booking never share the sauna", func() {
		t := s.T()
		admin := s.jwt.AdminToken(t, dbtest.DefaultClubID)
		start := tomorrowAt(17)

		for range rounds {
			f := s.newFixture(0)
			session := func() int {
				return httptest.PerformRequest(t, s.Router, http.MethodPost, sharedReservationsURL, request.CreateSharedReservationRequest{
					SaunaID:   f.saunaID,
					Name:      "Club sauna",
					StartTime: start,
					EndTime:   start.Add(3 * time.Hour),
				}, admin).Code
			}
			booking := func() int {
				return httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, createRequest(f, start.Add(time.Hour), 2, 0), f.token).Code
			}

			codes := s.race(session, booking)

			require.Equal(t, 1, countStatus(codes, http.StatusCreated), "codes: %v", codes)
			require.Equal(t, 1, countStatus(codes, http.StatusConflict), "codes: %v", codes)
		}
		require.Equal(t, rounds, dbtest.CountRows(t, s.DB, "shared_reservations")+dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Error case: the schema rejects overlapping sessions written directly", func() {
		t := s.T()
		f := s.newFixture(0)
		start := tomorrowAt(17)
		insert := `INSERT INTO shared_reservations (sauna_id, name, start_time, end_time) VALUES ($1, $2, $3, $4)`

		_, err := s.DB.Exec(context.Background(), insert, f.saunaID, "Evening", start, start.Add(3*time.Hour))
		require.NoError(t, err)
		_, err = s.DB.Exec(context.Background(), insert, f.saunaID, "Late", start.Add(2*time.Hour), start.Add(4*time.Hour))

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
		require.Equal(t, "23P01", pgErr.Code)
		require.Equal(t, "shared_reservations_no_overlap", pgErr.ConstraintName)

		// back-to-back sessions still fit
		_, err = s.DB.Exec(context.Background(), insert, f.saunaID, "Late", start.Add(3*time.Hour), start.Add(4*time.Hour))
		require.NoError(t, err)
	})
}
