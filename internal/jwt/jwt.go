package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned for a bearer token whose exp claim has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrEmptyToken is returned for an empty token string.
var ErrEmptyToken = errors.New("token is empty")

// Claims holds the registered claims read from a backend token.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
	IssuedAt  *time.Time
}

// Inspector reads backend bearer tokens without verifying their signature.
// The backend owns the signing key; the gateway only needs the expiry to
// drop a stale session early. Opaque, non-JWT tokens are accepted as is.
type Inspector struct {
	leeway time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLeeway tolerates clock skew when checking exp.
func WithLeeway(d time.Duration) Option {
	return func(i *Inspector) {
		i.leeway = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(i *Inspector) {
		i.now = now
	}
}

// New creates an Inspector.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		now:    time.Now,
		parser: jwt.NewParser(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GetClaims parses the token payload. It fails for tokens that are not JWTs.
func (i *Inspector) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, err
	}

	out := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		out.ExpiresAt = &exp
	}
	if claims.IssuedAt != nil {
		iat := claims.IssuedAt.Time
		out.IssuedAt = &iat
	}
	return out, nil
}

// Validate fails only for empty tokens and JWTs whose exp has passed.
func (i *Inspector) Validate(ctx context.Context, tokenString string) error {
	if strings.TrimSpace(tokenString) == "" {
		return ErrEmptyToken
	}

	claims, err := i.GetClaims(ctx, tokenString)
	if err != nil {
		// opaque token, nothing to check
		return nil
	}
	if claims.ExpiresAt != nil && i.now().After(claims.ExpiresAt.Add(i.leeway)) {
		return ErrTokenExpired
	}
	return nil
}
