package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"
)

//go:generate mockgen -source=transfers.go -destination=mock_transfers.go -package=handlers

// DefaultHistoryLimit is used when the limit query parameter is absent.
const DefaultHistoryLimit = 20

// HistoryReader lists journaled transfers.
type HistoryReader interface {
	History(ctx context.Context, limit int) ([]models.TransferRecord, error)
}

type historyQuery struct {
	Limit int `validate:"min=1,max=100"`
}

// TransfersResponse represents the transfer journal
// swagger:model TransfersResponse
type TransfersResponse struct {
	Transfers []models.TransferRecord `json:"transfers"`
}

// NewTransfersHandler returns an HTTP handler listing the latest transfers.
// @Summary Transfer history
// @Description Lists journaled transfer attempts, newest first
// @Tags transfer
// @Produce json
// @Param limit query int false "Max records" default(20) minimum(1) maximum(100)
// @Success 200 {object} handlers.TransfersResponse "Transfers"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 501 {object} handlers.ErrorResponse "Journal disabled"
// @Router /transfers [get]
func NewTransfersHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := historyQuery{Limit: DefaultHistoryLimit}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a number"})
				return
			}
			q.Limit = limit
		}
		if err := validateRequest(q); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		records, err := svc.History(r.Context(), q.Limit)
		if err != nil {
			if errors.Is(err, services.ErrJournalDisabled) {
				writeJSON(w, http.StatusNotImplemented, ErrorResponse{Error: err.Error()})
				return
			}
			writeError(w, err)
			return
		}
		if records == nil {
			records = []models.TransferRecord{}
		}

		writeJSON(w, http.StatusOK, TransfersResponse{Transfers: records})
	}
}
