package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=transfer_preview.go -destination=mock_transfer_preview.go -package=handlers

// Previewer quantizes and validates a transfer without sending it.
type Previewer interface {
	Preview(rawAmount float64) models.TransferPreview
	PreviewAll() models.TransferPreview
}

// TransferPreviewRequest represents the JSON body for a transfer preview
// swagger:model TransferPreviewRequest
type TransferPreviewRequest struct {
	// Amount as typed, number or numeric string; unparsable input counts as 0
	// default: 300
	Amount json.RawMessage `json:"amount" swaggertype:"string"`

	// Preview the whole wallet balance instead of amount
	// default: false
	All bool `json:"all"`
}

// NewTransferPreviewHandler returns an HTTP handler previewing a transfer.
// @Summary Preview transfer
// @Description Returns the quantized amount, the game units, the violations and whether confirm is enabled
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body handlers.TransferPreviewRequest true "Preview request"
// @Success 200 {object} models.TransferPreview "Preview"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transfer/preview [post]
func NewTransferPreviewHandler(svc Previewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferPreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		var preview models.TransferPreview
		if req.All {
			preview = svc.PreviewAll()
		} else {
			preview = svc.Preview(parseAmount(req.Amount))
		}

		writeJSON(w, http.StatusOK, preview)
	}
}
