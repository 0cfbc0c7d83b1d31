package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/catalog"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=handlers

// BalanceReader reloads the cached balances.
type BalanceReader interface {
	RefreshWallet(ctx context.Context) (float64, error)
	FetchBalance(ctx context.Context, gameID models.GameID) (float64, error)
	State() models.TransferStatus
}

// BalanceResponse represents the wallet and the selected game balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet balance
	// default: 1000
	Wallet float64 `json:"wallet"`

	// Game balance, null when it could not be read
	// default: 50
	Game *float64 `json:"game"`

	// Game the balance belongs to
	GameID models.GameID `json:"game_id,omitempty" swaggertype:"string"`

	// Wallet balance with thousands separators
	// default: 1,000
	WalletDisplay string `json:"wallet_display"`
}

// NewBalanceHandler returns an HTTP handler reloading both balances in parallel.
// A failed game balance read is reported as a null game balance.
// @Summary Get balances
// @Description Reloads the wallet balance and the balance of the selected or given game
// @Tags wallet
// @Produce json
// @Param game_id query string false "Game id, defaults to the selected game"
// @Success 200 {object} handlers.BalanceResponse "Balances"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Backend read failed"
// @Router /balance [get]
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := models.GameID(r.URL.Query().Get("game_id"))

		group, groupCtx := errgroup.WithContext(r.Context())
		group.Go(func() error {
			_, err := svc.RefreshWallet(groupCtx)
			return err
		})
		group.Go(func() error {
			_, err := svc.FetchBalance(groupCtx, gameID)
			if errors.Is(err, services.ErrNoGameSelected) || errors.Is(err, services.ErrFetch) {
				logger.Log.Warnw("game balance unavailable", "game_id", gameID, "error", err)
				return nil
			}
			return err
		})
		if err := group.Wait(); err != nil {
			writeError(w, err)
			return
		}

		balance := svc.State().Balance
		writeJSON(w, http.StatusOK, BalanceResponse{
			Wallet:        balance.Wallet,
			Game:          balance.Game,
			GameID:        balance.GameID,
			WalletDisplay: catalog.FormatPoints(balance.Wallet),
		})
	}
}
