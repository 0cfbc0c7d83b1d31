package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

// Logouter clears the stored session.
type Logouter interface {
	Logout(ctx context.Context) error
}

// MessageResponse is a plain confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// default: OK
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for user logout.
// @Summary User logout
// @Description Forget the stored session token and user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
