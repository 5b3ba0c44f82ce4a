//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/readstore"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	readstoremock "sauna-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSaunaReadStore(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	row := sqlc.Saunas{
		ID:               uuid.New(),
		IslandID:         uuid.New(),
		Name:             "Rantasauna",
		HeatingTimeHours: 2,
		AutoClubSauna:    true,
		CreatedAt:        ts(created),
		UpdatedAt:        ts(created),
	}

	t.Run("success: entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSaunaReadQueries(ctrl)
		mockQueries.EXPECT().GetSaunaByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		s, err := readstore.NewSaunaReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, s.HeatingTimeHours())
		assert.True(t, s.AutoClubSaunaEnabled())
	})

	t.Run("success: view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSaunaReadQueries(ctrl)
		mockQueries.EXPECT().GetSaunaByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		v, err := readstore.NewSaunaReadStore(mockQueries, &mockDBTX{}).FindViewByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, "Rantasauna", v.Name)
		assert.Equal(t, row.IslandID, v.IslandID)
	})

	t.Run("error: unknown sauna", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSaunaReadQueries(ctrl)
		mockQueries.EXPECT().GetSaunaByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Saunas{}, pgx.ErrNoRows)

		s, err := readstore.NewSaunaReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, uuid.New())

		assert.Nil(t, s)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: auto club saunas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSaunaReadQueries(ctrl)
		mockQueries.EXPECT().ListAutoClubSaunas(ctx, gomock.Any()).Return([]sqlc.Saunas{row}, nil)

		list, err := readstore.NewSaunaReadStore(mockQueries, &mockDBTX{}).ListAutoClubSaunas(ctx)

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, row.ID, list[0].ID())
	})
}
