//go:build unit

package repository_test

import (
	"context"
	"testing"

	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	repositorymock "sauna-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSaunaRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	saunaID := uuid.New()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row locked"},
		{name: "error: sauna not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: deadlock", err: &pgconn.PgError{Code: "40P01"}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSaunaLockQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSaunaRepository(mockQueries)

			mockQueries.EXPECT().LockSaunaForUpdate(ctx, mockDB, saunaID).Return(sqlc.Saunas{ID: saunaID}, tc.err)

			err := repo.LockForUpdate(ctx, mockDB, saunaID)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
