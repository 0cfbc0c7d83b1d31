package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/validators"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=coordinator.go -destination=mock_coordinator.go -package=services

// DefaultSuccessDisplay is how long SUCCESS stays visible before IDLE.
const DefaultSuccessDisplay = 2 * time.Second

// User-facing status messages.
const (
	MessageTransferSuccess    = "Transfer successful!"
	MessageTransferFailed     = "Transfer failed. Please try again."
	MessageTransferInProgress = "Transfer in progress."
	MessageGameNotFound       = "Game ID not found."
	MessageLoginRequired      = "Please log in."
)

// ErrJournalDisabled is returned by History when no journal is configured.
var ErrJournalDisabled = errors.New("transfer journal disabled")

// Backend is the remote gaming backend.
type Backend interface {
	DiscoverAPIBase(ctx context.Context) (string, error)
	Login(ctx context.Context, baseURL string, req models.LoginRequest) (*models.LoginResponse, int, error)
	GetUser(ctx context.Context, baseURL, token string) (*models.UserProfile, int, error)
	GetGameCategories(ctx context.Context, baseURL, token string) (*models.GameCategoriesResponse, int, error)
	GetGameBalance(ctx context.Context, baseURL, token string, gameID models.GameID) (*models.GameBalanceResponse, int, error)
	LoginToGame(ctx context.Context, baseURL, token string, req models.GameLoginRequest) (int, error)
	GetLinks(ctx context.Context, baseURL, token string) (*models.LinksResponse, int, error)
}

// BaseURLCache caches the discovered API base URL.
type BaseURLCache interface {
	GetBaseURL(ctx context.Context) (string, error)       // Returns cached base URL
	SetBaseURL(ctx context.Context, baseURL string) error // Stores base URL
}

// SessionStore persists the session and the current game selection.
type SessionStore interface {
	GetSession(ctx context.Context) (*models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
	GetSelectedGameID(ctx context.Context) (models.GameID, error)
	SetSelectedGameID(ctx context.Context, id models.GameID) error
	GetSpecialFlow(ctx context.Context) (string, error)
	SetSpecialFlow(ctx context.Context, flag string) error
}

// TransferWriter journals transfer attempts.
type TransferWriter interface {
	SaveTransfer(ctx context.Context, rec models.TransferRecord) error
}

// TransferReader reads the transfer journal.
type TransferReader interface {
	ListTransfers(ctx context.Context, limit int) ([]models.TransferRecord, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CoordinatorConfig holds the transfer rules.
type CoordinatorConfig struct {
	Limits         models.Limits
	ExchangeRate   int64
	SuccessDisplay time.Duration
}

// Coordinator owns the session, the cached balances and the transfer state machine.
// Balances are only mutated under mu and the lock is never held across a backend call.
type Coordinator struct {
	backend     Backend
	store       SessionStore
	cache       BaseURLCache
	journal     TransferWriter
	history     TransferReader
	kafkaWriter KafkaWriter

	limits         models.Limits
	rate           int64
	successDisplay time.Duration
	now            func() time.Time

	mu         sync.Mutex
	state      models.TransferState
	last       models.TransferState
	message    string
	wallet     float64
	game       *float64
	gameID     models.GameID
	generation uint64
}

// NewCoordinator creates a Coordinator. cache, journal, history and kafkaWriter may be nil.
func NewCoordinator(
	backend Backend,
	store SessionStore,
	cache BaseURLCache,
	journal TransferWriter,
	history TransferReader,
	kafkaWriter KafkaWriter,
	cfg CoordinatorConfig,
) *Coordinator {
	if cfg.Limits == (models.Limits{}) {
		cfg.Limits = models.LimitsModal
	}
	if cfg.ExchangeRate <= 0 {
		cfg.ExchangeRate = models.DefaultExchangeRate
	}
	if cfg.SuccessDisplay <= 0 {
		cfg.SuccessDisplay = DefaultSuccessDisplay
	}
	return &Coordinator{
		backend:        backend,
		store:          store,
		cache:          cache,
		journal:        journal,
		history:        history,
		kafkaWriter:    kafkaWriter,
		limits:         cfg.Limits,
		rate:           cfg.ExchangeRate,
		successDisplay: cfg.SuccessDisplay,
		now:            time.Now,
		state:          models.TransferStateIdle,
	}
}

// DiscoverAPIBase returns the backend base URL, cache first.
func (c *Coordinator) DiscoverAPIBase(ctx context.Context) (string, error) {
	if c.cache != nil {
		baseURL, err := c.cache.GetBaseURL(ctx)
		if err == nil && baseURL != "" {
			return baseURL, nil
		}
	}

	baseURL, err := c.backend.DiscoverAPIBase(ctx)
	if err != nil {
		logger.Log.Errorw("failed to discover api base", "error", err)
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if c.cache != nil {
		if err := c.cache.SetBaseURL(ctx, baseURL); err != nil {
			logger.Log.Errorw("failed to cache api base", "base_url", baseURL, "error", err)
		}
	}
	return baseURL, nil
}

// Login authenticates against the backend and stores the session.
// The store is left untouched unless the backend answers 200 with a token.
func (c *Coordinator) Login(ctx context.Context, phone, password string) (*models.Session, error) {
	baseURL, err := c.DiscoverAPIBase(ctx)
	if err != nil {
		return nil, err
	}

	resp, status, err := c.backend.Login(ctx, baseURL, models.LoginRequest{Phone: phone, Password: password})
	if err != nil {
		logger.Log.Errorw("login request failed", "phone", phone, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAuth, err)
	}
	if status != http.StatusOK {
		logger.Log.Warnw("login rejected", "phone", phone, "status", status)
		return nil, fmt.Errorf("%w: status %d", ErrAuth, status)
	}
	if resp == nil || resp.Token == "" {
		return nil, fmt.Errorf("%w: no token in response", ErrAuth)
	}

	session := models.Session{Token: resp.Token, User: resp.User, Message: resp.Message}
	if err := c.store.SaveSession(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
		return nil, fmt.Errorf("save session: %w", err)
	}

	c.mu.Lock()
	c.wallet = 0
	c.game = nil
	c.mu.Unlock()

	logger.Log.Infow("user logged in", "phone", phone, "message", session.Message)
	return &session, nil
}

// Logout clears the stored session and the cached balances.
func (c *Coordinator) Logout(ctx context.Context) error {
	if err := c.store.ClearSession(ctx); err != nil {
		logger.Log.Errorw("failed to clear session", "error", err)
		return err
	}

	c.mu.Lock()
	c.wallet = 0
	c.game = nil
	c.gameID = ""
	c.mu.Unlock()

	logger.Log.Infow("user logged out")
	return nil
}

// CurrentSession returns the stored session or ErrAuth.
func (c *Coordinator) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if session == nil || session.Token == "" {
		return nil, fmt.Errorf("%w: not logged in", ErrAuth)
	}
	return session, nil
}

func (c *Coordinator) authorized(ctx context.Context) (baseURL, token string, err error) {
	session, err := c.CurrentSession(ctx)
	if err != nil {
		return "", "", err
	}
	baseURL, err = c.DiscoverAPIBase(ctx)
	if err != nil {
		return "", "", err
	}
	return baseURL, session.Token, nil
}

// GameCategories returns the game catalog, or nil on any failure.
func (c *Coordinator) GameCategories(ctx context.Context) []models.Category {
	baseURL, token, err := c.authorized(ctx)
	if err != nil {
		logger.Log.Warnw("skipping game categories", "error", err)
		return nil
	}

	resp, status, err := c.backend.GetGameCategories(ctx, baseURL, token)
	if err != nil || status != http.StatusOK || resp == nil {
		logger.Log.Errorw("failed to fetch game categories", "status", status, "error", err)
		return nil
	}
	return resp.Games
}

// GameLinks returns the external game links, or nil on any failure.
func (c *Coordinator) GameLinks(ctx context.Context) []models.Link {
	baseURL, token, err := c.authorized(ctx)
	if err != nil {
		logger.Log.Warnw("skipping game links", "error", err)
		return nil
	}

	resp, status, err := c.backend.GetLinks(ctx, baseURL, token)
	if err != nil || status != http.StatusOK || resp == nil {
		logger.Log.Errorw("failed to fetch game links", "status", status, "error", err)
		return nil
	}
	return resp.Data
}

// RefreshWallet reloads the wallet balance from the user profile.
func (c *Coordinator) RefreshWallet(ctx context.Context) (float64, error) {
	baseURL, token, err := c.authorized(ctx)
	if err != nil {
		return 0, err
	}

	profile, status, err := c.backend.GetUser(ctx, baseURL, token)
	if err != nil {
		logger.Log.Errorw("failed to fetch user", "error", err)
		return 0, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if status != http.StatusOK || profile == nil {
		logger.Log.Errorw("user request rejected", "status", status)
		return 0, fmt.Errorf("%w: user status %d", ErrFetch, status)
	}

	wallet := profile.WalletBalance()
	c.mu.Lock()
	c.wallet = wallet
	c.mu.Unlock()
	return wallet, nil
}

// FetchBalance reloads the balance of a game. An empty gameID means the
// selected one. A missing balance reads as 0; a failure leaves it unknown.
func (c *Coordinator) FetchBalance(ctx context.Context, gameID models.GameID) (float64, error) {
	gameID, _, err := c.resolveGame(ctx, gameID)
	if err != nil {
		return 0, err
	}

	baseURL, token, err := c.authorized(ctx)
	if err != nil {
		return 0, err
	}

	resp, status, err := c.backend.GetGameBalance(ctx, baseURL, token, gameID)
	if err == nil && (status != http.StatusOK || resp == nil) {
		err = fmt.Errorf("balance status %d", status)
	}
	if err != nil {
		logger.Log.Errorw("failed to fetch game balance", "game_id", gameID, "error", err)
		c.mu.Lock()
		c.gameID = gameID
		c.game = nil
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	amount := resp.Amount()
	c.mu.Lock()
	c.gameID = gameID
	c.game = &amount
	c.mu.Unlock()
	return amount, nil
}

// SelectGame stores a regular game as the transfer target.
func (c *Coordinator) SelectGame(ctx context.Context, gameID models.GameID) error {
	if err := c.store.SetSelectedGameID(ctx, gameID); err != nil {
		return fmt.Errorf("store game id: %w", err)
	}
	if err := c.store.SetSpecialFlow(ctx, ""); err != nil {
		return fmt.Errorf("clear special flow: %w", err)
	}
	c.switchGame(gameID)
	return nil
}

// SelectSpecialFlow marks the cock-fight flow as the transfer target.
func (c *Coordinator) SelectSpecialFlow(ctx context.Context) error {
	if err := c.store.SetSelectedGameID(ctx, ""); err != nil {
		return fmt.Errorf("clear game id: %w", err)
	}
	if err := c.store.SetSpecialFlow(ctx, models.SpecialFlowDaga); err != nil {
		return fmt.Errorf("store special flow: %w", err)
	}
	c.switchGame(models.SpecialFlowDaga)
	return nil
}

func (c *Coordinator) switchGame(gameID models.GameID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gameID != gameID {
		c.gameID = gameID
		c.game = nil
	}
}

// resolveGame picks the transfer target: explicit id, stored id, then the special flow.
func (c *Coordinator) resolveGame(ctx context.Context, explicit models.GameID) (models.GameID, bool, error) {
	flag, err := c.store.GetSpecialFlow(ctx)
	if err != nil {
		return "", false, fmt.Errorf("read special flow: %w", err)
	}
	special := flag != ""

	if explicit != "" {
		return explicit, special || explicit == models.SpecialFlowDaga, nil
	}

	stored, err := c.store.GetSelectedGameID(ctx)
	if err != nil {
		return "", false, fmt.Errorf("read game id: %w", err)
	}
	if stored != "" {
		return stored, special, nil
	}
	if special {
		return models.GameID(flag), true, nil
	}
	return "", false, ErrNoGameSelected
}

// Preview quantizes and validates rawAmount against the cached wallet.
func (c *Coordinator) Preview(rawAmount float64) models.TransferPreview {
	c.mu.Lock()
	wallet, loading := c.wallet, c.state == models.TransferStateLoading
	c.mu.Unlock()
	return validators.Preview(rawAmount, c.limits, c.rate, wallet, loading)
}

// PreviewAll previews a transfer of the whole wallet.
func (c *Coordinator) PreviewAll() models.TransferPreview {
	c.mu.Lock()
	wallet := c.wallet
	c.mu.Unlock()
	if wallet < 0 {
		wallet = 0
	}
	return c.Preview(wallet)
}

// Transfer sends the quantized rawAmount to a game. On success the cached
// balances move optimistically and are not refetched.
func (c *Coordinator) Transfer(ctx context.Context, gameID models.GameID, rawAmount float64) (models.TransferOutcome, error) {
	gameID, special, err := c.resolveGame(ctx, gameID)
	if err != nil {
		return models.TransferOutcome{Reason: MessageGameNotFound}, err
	}

	session, err := c.CurrentSession(ctx)
	if err != nil {
		return models.TransferOutcome{Reason: MessageLoginRequired}, err
	}

	req := models.TransferRequest{
		RawAmount:    rawAmount,
		GameID:       gameID,
		MinAmount:    c.limits.Min,
		MaxAmount:    c.limits.Max,
		ExchangeRate: c.rate,
	}

	c.mu.Lock()
	if c.state == models.TransferStateLoading {
		c.mu.Unlock()
		return models.TransferOutcome{Reason: MessageTransferInProgress}, ErrTransferInProgress
	}
	conv, result := validators.CheckTransfer(req, c.wallet)
	if !result.Valid {
		c.mu.Unlock()
		verr := &ValidationError{Amount: conv.QuantizedAmount, Violations: result.Violations}
		return models.TransferOutcome{Reason: verr.Error()}, verr
	}
	c.state = models.TransferStateLoading
	c.message = ""
	c.generation++
	c.mu.Unlock()

	rec := models.TransferRecord{
		TransferID:     uuid.NewString(),
		GameID:         gameID.String(),
		RawAmount:      rawAmount,
		Points:         conv.QuantizedAmount,
		ConvertedUnits: conv.ConvertedUnits,
		CreatedAt:      c.now().UTC(),
	}

	if err := c.sendPoints(ctx, session.Token, gameID, conv.QuantizedAmount); err != nil {
		logger.Log.Errorw("transfer failed", "transfer_id", rec.TransferID, "game_id", gameID, "points", rec.Points, "error", err)
		c.fail()
		rec.Status = models.TransferRecordFailed
		rec.Reason = err.Error()
		c.record(ctx, rec)
		return models.TransferOutcome{Reason: MessageTransferFailed, Points: rec.Points}, err
	}

	c.succeed(gameID, conv.QuantizedAmount)
	logger.Log.Infow("transfer succeeded", "transfer_id", rec.TransferID, "game_id", gameID, "points", rec.Points)

	rec.Status = models.TransferRecordSuccess
	c.record(ctx, rec)
	c.publishTransaction(context.WithoutCancel(ctx), models.Transaction{
		TransactionID:  rec.TransferID,
		Timestamp:      rec.CreatedAt.Unix(),
		GameID:         rec.GameID,
		Amount:         float64(rec.Points),
		ConvertedUnits: rec.ConvertedUnits,
		Operation:      "transfer",
	})

	outcome := models.TransferOutcome{OK: true, Points: conv.QuantizedAmount}
	if special {
		outcome.Links = c.GameLinks(ctx)
	}
	return outcome, nil
}

// TransferAll transfers the whole cached wallet balance.
func (c *Coordinator) TransferAll(ctx context.Context, gameID models.GameID) (models.TransferOutcome, error) {
	c.mu.Lock()
	wallet := c.wallet
	c.mu.Unlock()
	return c.Transfer(ctx, gameID, wallet)
}

func (c *Coordinator) sendPoints(ctx context.Context, token string, gameID models.GameID, points int64) error {
	baseURL, err := c.DiscoverAPIBase(ctx)
	if err != nil {
		return err
	}
	status, err := c.backend.LoginToGame(ctx, baseURL, token, models.GameLoginRequest{GameID: gameID, Points: points})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("%w: status %d", ErrTransfer, status)
	}
	return nil
}

func (c *Coordinator) succeed(gameID models.GameID, points int64) {
	c.mu.Lock()
	c.wallet -= float64(points)
	if c.gameID == gameID {
		if c.game != nil {
			game := *c.game + float64(points)
			c.game = &game
		}
	} else {
		c.gameID = gameID
		c.game = nil
	}
	c.state = models.TransferStateSuccess
	c.last = models.TransferStateSuccess
	c.message = MessageTransferSuccess
	generation := c.generation
	c.mu.Unlock()

	time.AfterFunc(c.successDisplay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation == generation && c.state == models.TransferStateSuccess {
			c.state = models.TransferStateIdle
			c.message = ""
		}
	})
}

// fail passes through FAILED straight back to IDLE, keeping the message.
func (c *Coordinator) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = models.TransferStateIdle
	c.last = models.TransferStateFailed
	c.message = MessageTransferFailed
}

// State returns a snapshot of the transfer state and cached balances.
func (c *Coordinator) State() models.TransferStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	status := models.TransferStatus{
		State:   c.state,
		Last:    c.last,
		Message: c.message,
		Balance: models.Balance{Wallet: c.wallet, GameID: c.gameID},
	}
	if c.game != nil {
		game := *c.game
		status.Balance.Game = &game
	}
	return status
}

// History returns the latest journaled transfers.
func (c *Coordinator) History(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	if c.history == nil {
		return nil, ErrJournalDisabled
	}
	records, err := c.history.ListTransfers(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transfers", "limit", limit, "error", err)
		return nil, err
	}
	return records, nil
}

// record journals a transfer attempt. Journal failures are logged only.
func (c *Coordinator) record(ctx context.Context, rec models.TransferRecord) {
	if c.journal == nil {
		return
	}
	if err := c.journal.SaveTransfer(context.WithoutCancel(ctx), rec); err != nil {
		logger.Log.Errorw("failed to journal transfer", "transfer_id", rec.TransferID, "error", err)
	}
}

// publishTransaction publishes a transfer to Kafka.
func (c *Coordinator) publishTransaction(ctx context.Context, txn models.Transaction) {
	if c.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID),
		Value: data,
	}

	if err := c.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
