//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rentx-api/internal/domain/user"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity service does, with the secret
// the API under test validates against.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, roles ...user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, userID, roles)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, roles ...user.Role) string {
	t.Helper()
	return h.sign(t, -time.Minute, userID, roles)
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, userID uuid.UUID, roles user.Roles) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, d).
		GenerateToken(userID, userID.String()[:8]+"@example.com", roles)
	require.NoError(t, err)
	return token
}
