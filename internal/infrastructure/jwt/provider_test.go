package jwtinfra

import (
	"testing"
	"time"

	"github.com/maverick1978/3dlabmod1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_SignAndVerify(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := p.Sign(42, "profe", domain.RoleEducator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "profe", claims.Username)
	assert.Equal(t, domain.RoleEducator, claims.Role)
}

func TestProvider_RejectsExpiredToken(t *testing.T) {
	p, err := NewProvider("test-secret", -time.Minute)
	require.NoError(t, err)
	// A non-positive expiry falls back to one hour, so force expiry by
	// building a provider with a short window instead.
	p.expiry = -time.Minute

	token, err := p.Sign(1, "admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestProvider_RejectsForeignSecret(t *testing.T) {
	p1, err := NewProvider("secret-one", time.Hour)
	require.NoError(t, err)
	p2, err := NewProvider("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := p1.Sign(1, "admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = p2.Verify(token)
	assert.Error(t, err)
}

func TestNewProvider_RequiresSecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	assert.Error(t, err)
}
