//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"sauna-reservation/internal/pkg/config"
	"sauna-reservation/internal/pkg/jwt"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the club portal does, using the service's own config.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) MemberToken(t *testing.T, clubID, boatID uuid.UUID) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, &boatID, clubID, shared.RoleMember)
}

func (h *JWTHelper) AdminToken(t *testing.T, clubID uuid.UUID) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, nil, clubID, shared.RoleAdmin)
}

func (h *JWTHelper) ExpiredMemberToken(t *testing.T, clubID, boatID uuid.UUID) string {
	t.Helper()
	token := h.generate(t, time.Millisecond, &boatID, clubID, shared.RoleMember)
	time.Sleep(1100 * time.Millisecond)
	return token
}

func (h *JWTHelper) generate(t *testing.T, d time.Duration, boatID *uuid.UUID, clubID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, d)
	token, err := service.GenerateToken(uuid.New(), boatID, clubID, role)
	require.NoError(t, err)
	return token
}
