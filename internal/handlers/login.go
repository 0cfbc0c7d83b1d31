package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer authenticates against the gaming backend.
type Loginer interface {
	Login(ctx context.Context, phone, password string) (*models.Session, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Phone number
	// required: true
	// default: 0900000000
	Phone string `json:"phone" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Backend bearer token
	// default: TOKEN
	Token string `json:"token"`

	// Backend user object
	User json.RawMessage `json:"user,omitempty" swaggertype:"object"`

	// Backend login message
	// default: LOGIN_SUCCESS
	Message models.LoginMessage `json:"message,omitempty"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate against the gaming backend and store the session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid phone or password"
// @Failure 503 {object} handlers.ErrorResponse "Backend unavailable"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validateRequest(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		session, err := svc.Login(r.Context(), req.Phone, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token:   session.Token,
			User:    session.User,
			Message: session.Message,
		})
	}
}
