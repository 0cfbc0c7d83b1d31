package models

// Balance mirrors the wallet and the selected game balance.
// Game is nil when the last game balance read failed or none was made.
type Balance struct {
	Wallet float64  `json:"wallet"`
	Game   *float64 `json:"game"`
	GameID GameID   `json:"game_id,omitempty"`
}

// GameBalanceResponse is the backend game balance payload.
type GameBalanceResponse struct {
	Balance *float64 `json:"balance"`
}

// Amount returns the balance, treating a missing field as zero.
func (r *GameBalanceResponse) Amount() float64 {
	if r == nil || r.Balance == nil {
		return 0
	}
	return *r.Balance
}
