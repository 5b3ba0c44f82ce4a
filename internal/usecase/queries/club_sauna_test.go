//go:build unit

package queries_test

import (
	"testing"
	"time"

	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubSaunaQueries_Eligibility(t *testing.T) {
	q := queries.NewClubSaunaQueries(time.UTC)

	testCases := []struct {
		date     string
		eligible bool
		season   string
	}{
		{date: "2025-07-15", eligible: true, season: "high"},
		{date: "2025-05-16", eligible: true, season: "shoulder"}, // Friday
		{date: "2025-05-18", eligible: false},                    // Sunday
		{date: "2025-09-06", eligible: true, season: "shoulder"}, // Saturday
		{date: "2025-10-03", eligible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			view, err := q.Eligibility(tc.date)

			require.NoError(t, err)
			assert.Equal(t, tc.date, view.Date)
			assert.Equal(t, tc.eligible, view.Eligible)
			assert.Equal(t, tc.season, view.Season)
		})
	}

	t.Run("error: malformed", func(t *testing.T) {
		_, err := q.Eligibility("2025-13-01")
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
