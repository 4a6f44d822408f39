package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	id := NewClientID()

	token, err := svc.GenerateClientToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.ClientID)
	assert.Equal(t, id, claims.Subject)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)
	expired := NewJWTService("secret", time.Hour)
	expired.ttl = -time.Hour

	otherToken, err := other.GenerateClientToken("c1")
	require.NoError(t, err)
	expiredToken, err := expired.GenerateClientToken("c1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong key", otherToken},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_DefaultTTL(t *testing.T) {
	assert.Equal(t, ClientTokenExpiry, NewJWTService("s", 0).TTL())

	_, err := NewJWTService("s", 0).GenerateClientToken("")
	assert.Error(t, err)
}
