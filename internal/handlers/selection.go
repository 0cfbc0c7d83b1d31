package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=selection.go -destination=mock_selection.go -package=handlers

// GameSelector stores the transfer target.
type GameSelector interface {
	SelectGame(ctx context.Context, gameID models.GameID) error
	SelectSpecialFlow(ctx context.Context) error
}

// SelectionRequest represents the JSON body for choosing a game
// swagger:model SelectionRequest
type SelectionRequest struct {
	// Game id, number or string
	// default: 12
	GameID models.GameID `json:"game_id" validate:"required_without=Special" swaggertype:"string"`

	// Select the cock-fight flow instead of a game
	// default: false
	Special bool `json:"special"`
}

// SelectionResponse echoes the stored selection
// swagger:model SelectionResponse
type SelectionResponse struct {
	GameID  models.GameID `json:"game_id" swaggertype:"string"`
	Special bool          `json:"special"`
}

// NewSelectionHandler returns an HTTP handler selecting the transfer target.
// @Summary Select game
// @Description Stores the game that following transfers go to
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.SelectionRequest true "Selection"
// @Success 200 {object} handlers.SelectionResponse "Selection stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /selection [put]
func NewSelectionHandler(svc GameSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validateRequest(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		var err error
		resp := SelectionResponse{GameID: req.GameID, Special: req.Special}
		if req.Special {
			err = svc.SelectSpecialFlow(r.Context())
			resp.GameID = models.SpecialFlowDaga
		} else {
			err = svc.SelectGame(r.Context(), req.GameID)
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
