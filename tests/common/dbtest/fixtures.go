//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultClubID is reseeded after every reset.
var DefaultClubID = uuid.MustParse("6f1c7e52-3a0d-4a55-9d8e-0c2b1f7a9e11")

func CreateTestIsland(t *testing.T, db DBLike, clubID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	islandID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO islands (id, club_id, name) VALUES ($1, $2, $3)",
		islandID, clubID, name)
	require.NoError(t, err)
	return islandID
}

func CreateTestSauna(t *testing.T, db DBLike, islandID uuid.UUID, name string, heatingHours int, autoClubSauna bool) uuid.UUID {
	t.Helper()

	saunaID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO saunas (id, island_id, name, heating_time_hours, auto_club_sauna) VALUES ($1, $2, $3, $4, $5)",
		saunaID, islandID, name, heatingHours, autoClubSauna)
	require.NoError(t, err)
	return saunaID
}

func CreateTestBoat(t *testing.T, db DBLike, clubID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	boatID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO boats (id, club_id, name) VALUES ($1, $2, $3)",
		boatID, clubID, name)
	require.NoError(t, err)
	return boatID
}

// CreateTestReservation inserts an active one-hour reservation directly, bypassing the lead time rules.
func CreateTestReservation(t *testing.T, db DBLike, saunaID, boatID uuid.UUID, start time.Time, adults, kids int) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, sauna_id, boat_id, start_time, end_time, adults, kids)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, saunaID, boatID, start, start.Add(time.Hour), adults, kids)
	require.NoError(t, err)
	return reservationID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO clubs (id, name) VALUES ($1, 'Default Club')
		ON CONFLICT (id) DO NOTHING;
	`, DefaultClubID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
