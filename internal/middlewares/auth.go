package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// SessionGetter returns the stored gateway session.
type SessionGetter interface {
	CurrentSession(ctx context.Context) (*models.Session, error)
}

// TokenValidator checks that a bearer token is still usable.
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) error
}

type errorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware rejects requests when no session is stored or its token has expired.
// A session store failure answers 500.
func AuthMiddleware(sessions SessionGetter, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session, err := sessions.CurrentSession(ctx)
			if err != nil {
				if !errors.Is(err, services.ErrAuth) {
					logger.Log.Errorw("failed to read session", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				logger.Log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if err := validator.Validate(ctx, session.Token); err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
