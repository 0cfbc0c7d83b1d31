package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestInspector_GetClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Truncate(time.Second)
	token := signed(t, jwt.RegisteredClaims{
		Subject:   "player-42",
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(iat),
	})

	claims, err := New().GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "player-42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, exp.Equal(*claims.ExpiresAt))
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, iat.Equal(*claims.IssuedAt))
}

func TestInspector_GetClaims_Opaque(t *testing.T) {
	_, err := New().GetClaims(context.Background(), "12|Xk2mPq9")
	assert.Error(t, err)

	_, err = New().GetClaims(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestInspector_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	expired := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	fresh := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))})
	noExp := signed(t, jwt.RegisteredClaims{Subject: "player"})

	tests := []struct {
		name    string
		opts    []Option
		token   string
		wantErr error
	}{
		{name: "fresh", token: fresh},
		{name: "no exp claim", token: noExp},
		{name: "opaque token", token: "12|Xk2mPq9"},
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "expired within leeway", token: expired, opts: []Option{WithLeeway(2 * time.Minute)}},
		{name: "empty", token: "", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(append([]Option{WithClock(clock)}, tt.opts...)...)
			err := i.Validate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
