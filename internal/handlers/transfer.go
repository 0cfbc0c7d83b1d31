package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
)

//go:generate mockgen -source=transfer.go -destination=mock_transfer.go -package=handlers

// Transferer confirms transfers.
type Transferer interface {
	Transfer(ctx context.Context, gameID models.GameID, rawAmount float64) (models.TransferOutcome, error)
	TransferAll(ctx context.Context, gameID models.GameID) (models.TransferOutcome, error)
	State() models.TransferStatus
}

// TransferRequest represents the JSON body for a confirmed transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Target game, defaults to the selected game
	// default: 12
	GameID models.GameID `json:"game_id" swaggertype:"string"`

	// Amount as typed, number or string; unparsable input counts as 0
	// default: 300
	Amount json.RawMessage `json:"amount" validate:"required_without=All" swaggertype:"string"`

	// Transfer the whole wallet balance instead of amount
	// default: false
	All bool `json:"all"`
}

// TransferResponse represents a transfer result
// swagger:model TransferResponse
type TransferResponse struct {
	models.TransferOutcome
	Status models.TransferStatus `json:"status"`
}

// TransferErrorResponse represents a rejected or failed transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// default: Transfer failed. Please try again.
	Error string `json:"error"`

	// User-facing reason
	Reason string `json:"reason,omitempty"`

	// Failed client-side checks
	Violations []models.Violation `json:"violations,omitempty"`
}

// NewTransferHandler returns an HTTP handler confirming a transfer.
// @Summary Confirm transfer
// @Description Sends the quantized amount to the game and moves the cached balances
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer request"
// @Success 200 {object} handlers.TransferResponse "Transfer successful"
// @Failure 400 {object} handlers.TransferErrorResponse "Rejected by validation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.TransferErrorResponse "Transfer in progress"
// @Failure 502 {object} handlers.TransferErrorResponse "Backend rejected the transfer"
// @Router /transfer [post]
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validateRequest(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		var (
			outcome models.TransferOutcome
			err     error
		)
		if req.All {
			outcome, err = svc.TransferAll(r.Context(), req.GameID)
		} else {
			outcome, err = svc.Transfer(r.Context(), req.GameID, parseAmount(req.Amount))
		}
		if err != nil {
			status := statusForError(err)
			if status == http.StatusUnauthorized || status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
				writeError(w, err)
				return
			}
			resp := TransferErrorResponse{Error: err.Error(), Reason: outcome.Reason}
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				resp.Violations = verr.Violations
			}
			writeJSON(w, status, resp)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{TransferOutcome: outcome, Status: svc.State()})
	}
}
