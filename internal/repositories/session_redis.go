package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// Session store keys, named after the browser storage keys they replace.
const (
	keyToken = "token"
	keyUser  = "user"
	keyID    = "id"
	keyDaga  = "daga"
)

// SessionRedisRepository keeps the gateway session in Redis.
type SessionRedisRepository struct {
	client *redis.Client
	prefix string
}

// NewSessionRedisRepository creates a session store under the given key prefix.
func NewSessionRedisRepository(client *redis.Client, prefix string) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, prefix: prefix}
}

func (r *SessionRedisRepository) key(name string) string {
	return fmt.Sprintf("%s:session:%s", r.prefix, name)
}

// GetSession returns the stored session, or nil when no token is stored.
func (r *SessionRedisRepository) GetSession(ctx context.Context) (*models.Session, error) {
	vals, err := r.client.MGet(ctx, r.key(keyToken), r.key(keyUser)).Result()

	logger.Log.Debugw("session get", "prefix", r.prefix, "error", err)

	if err != nil {
		return nil, err
	}

	token, _ := vals[0].(string)
	if token == "" {
		return nil, nil
	}
	session := &models.Session{Token: token}
	if user, ok := vals[1].(string); ok && user != "" {
		session.User = json.RawMessage(user)
	}
	return session, nil
}

// SaveSession stores token and user in one MULTI/EXEC so neither is
// written without the other.
func (r *SessionRedisRepository) SaveSession(ctx context.Context, session models.Session) error {
	user := string(session.User)
	if user == "" {
		user = "null"
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(keyToken), session.Token, 0)
		pipe.Set(ctx, r.key(keyUser), user, 0)
		return nil
	})

	logger.Log.Debugw("session save", "prefix", r.prefix, "error", err)

	return err
}

// ClearSession removes token, user, selected game and special flow.
func (r *SessionRedisRepository) ClearSession(ctx context.Context) error {
	err := r.client.Del(ctx, r.key(keyToken), r.key(keyUser), r.key(keyID), r.key(keyDaga)).Err()

	logger.Log.Debugw("session clear", "prefix", r.prefix, "error", err)

	return err
}

// GetSelectedGameID returns the selected game id, or "" when none is stored
// or the stored value is not valid JSON.
func (r *SessionRedisRepository) GetSelectedGameID(ctx context.Context) (models.GameID, error) {
	raw, err := r.client.Get(ctx, r.key(keyID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return decodeGameID(raw), nil
}

// SetSelectedGameID stores the game id JSON-encoded; an empty id clears it.
func (r *SessionRedisRepository) SetSelectedGameID(ctx context.Context, id models.GameID) error {
	if id == "" {
		return r.client.Del(ctx, r.key(keyID)).Err()
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(keyID), raw, 0).Err()
}

// GetSpecialFlow returns the special-flow sentinel, or "".
func (r *SessionRedisRepository) GetSpecialFlow(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key(keyDaga)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// SetSpecialFlow stores the special-flow sentinel; "" clears it.
func (r *SessionRedisRepository) SetSpecialFlow(ctx context.Context, flag string) error {
	if flag == "" {
		return r.client.Del(ctx, r.key(keyDaga)).Err()
	}
	return r.client.Set(ctx, r.key(keyDaga), flag, 0).Err()
}

func decodeGameID(raw string) models.GameID {
	if raw == "" || raw == "undefined" {
		return ""
	}
	var id models.GameID
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		logger.Log.Warnw("invalid selected game id in session store", "value", raw, "error", err)
		return ""
	}
	return id
}
