package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// SessionMemoryRepository keeps the session in process memory.
// It is used when no Redis is configured.
type SessionMemoryRepository struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewSessionMemoryRepository creates an empty in-memory session store.
func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{vals: make(map[string]string)}
}

func (r *SessionMemoryRepository) GetSession(ctx context.Context) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token := r.vals[keyToken]
	if token == "" {
		return nil, nil
	}
	session := &models.Session{Token: token}
	if user := r.vals[keyUser]; user != "" {
		session.User = json.RawMessage(user)
	}
	return session, nil
}

func (r *SessionMemoryRepository) SaveSession(ctx context.Context, session models.Session) error {
	user := string(session.User)
	if user == "" {
		user = "null"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals[keyToken] = session.Token
	r.vals[keyUser] = user
	return nil
}

func (r *SessionMemoryRepository) ClearSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = make(map[string]string)
	return nil
}

func (r *SessionMemoryRepository) GetSelectedGameID(ctx context.Context) (models.GameID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return decodeGameID(r.vals[keyID]), nil
}

func (r *SessionMemoryRepository) SetSelectedGameID(ctx context.Context, id models.GameID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == "" {
		delete(r.vals, keyID)
		return nil
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	r.vals[keyID] = string(raw)
	return nil
}

func (r *SessionMemoryRepository) GetSpecialFlow(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vals[keyDaga], nil
}

func (r *SessionMemoryRepository) SetSpecialFlow(ctx context.Context, flag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if flag == "" {
		delete(r.vals, keyDaga)
		return nil
	}
	r.vals[keyDaga] = flag
	return nil
}
