package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=transfer_state.go -destination=mock_transfer_state.go -package=handlers

// StateGetter returns the transfer state snapshot.
type StateGetter interface {
	State() models.TransferStatus
}

// NewTransferStateHandler returns an HTTP handler reporting the transfer state.
// @Summary Transfer state
// @Tags transfer
// @Produce json
// @Success 200 {object} models.TransferStatus "Current state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transfer/state [get]
func NewTransferStateHandler(svc StateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.State())
	}
}
