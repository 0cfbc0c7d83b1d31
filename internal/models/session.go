package models

import "encoding/json"

// LoginMessage is the message field of a login response.
type LoginMessage string

const (
	LoginSuccess         LoginMessage = "LOGIN_SUCCESS"
	RequireResetPassword LoginMessage = "REQUIRE_RESET_PASSWORD"
)

// SpecialFlowDaga marks the cock-fight game flow in the session store.
const SpecialFlowDaga = "daga"

// Session is the authenticated state of the gateway user.
type Session struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user,omitempty"`
	Message LoginMessage    `json:"message,omitempty"`
}

// LoginRequest is the backend login body.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse is the backend login payload.
type LoginResponse struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Message LoginMessage    `json:"message"`
}

// UserProfile is the backend /api/user payload.
type UserProfile struct {
	ID        json.Number `json:"id,omitempty"`
	Phone     string      `json:"phone"`
	RawString string      `json:"raw_string,omitempty"`
	Balance   *float64    `json:"balance"`
}

// WalletBalance returns the profile balance, treating a missing field as zero.
func (p *UserProfile) WalletBalance() float64 {
	if p == nil || p.Balance == nil {
		return 0
	}
	return *p.Balance
}

// DiscoveryResponse is the remote configuration lookup payload.
type DiscoveryResponse struct {
	URL string `json:"url"`
}
