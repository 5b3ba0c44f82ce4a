//go:build unit

package api_test

import (
	"testing"
	"time"

	"sauna-reservation/internal/handler/middleware"
	"sauna-reservation/internal/pkg/jwt"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var tokenService = jwt.NewService("handler-unit-test-secret", "sauna-reservation", time.Hour)

func newAuthMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenService)
}

func memberToken(t *testing.T, boatID uuid.UUID) string {
	t.Helper()
	token, err := tokenService.GenerateToken(uuid.New(), &boatID, uuid.New(), shared.RoleMember)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := tokenService.GenerateToken(uuid.New(), nil, uuid.New(), shared.RoleAdmin)
	require.NoError(t, err)
	return token
}
