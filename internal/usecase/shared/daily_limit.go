package shared

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

// CheckDailyLimit loads every commitment of the boat on the island during date's
// day in loc with a single query and evaluates the one-per-day rule.
func CheckDailyLimit(
	ctx context.Context,
	reads CommitmentReader,
	loc *time.Location,
	boatID, islandID uuid.UUID,
	date time.Time,
) (dailylimit.Result, error) {
	dayStart, dayEnd := clock.DayBounds(date, loc)
	commitments, err := reads.BoatCommitments(ctx, boatID, islandID, dayStart, dayEnd)
	if err != nil {
		return dailylimit.Result{}, err
	}
	return dailylimit.Evaluate(commitments), nil
}
