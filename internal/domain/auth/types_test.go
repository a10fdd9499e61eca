package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, Identity{IsAdmin: true}.Role())
	assert.Equal(t, RoleUser, Identity{}.Role())
}

func TestSessionIsAdmin(t *testing.T) {
	assert.True(t, Session{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Session{Role: RoleUser}.IsAdmin())
	assert.False(t, Session{}.IsAdmin())
}

func TestSessionIdentityRoundTrip(t *testing.T) {
	sess := Session{
		ID:        "sess-1",
		Token:     "tok",
		UserID:    7,
		Email:     "admin@example.com",
		Role:      RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	identity := sess.Identity()
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.True(t, identity.IsAdmin)
	assert.Equal(t, RoleAdmin, identity.Role())
}
