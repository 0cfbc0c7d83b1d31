package models

import "time"

// Default exchange rate: 30 wallet units buy one game unit.
const DefaultExchangeRate int64 = 30

// Limits bounds a single transfer in wallet units.
type Limits struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Two limit profiles exist side by side in the site scripts.
var (
	LimitsModal  = Limits{Min: 30, Max: 1_000_000}
	LimitsPoints = Limits{Min: 150, Max: 100_000}
)

// Limit profile names accepted by configuration.
const (
	LimitsProfileModal  = "modal"
	LimitsProfilePoints = "points"
)

// TransferRequest is a user-entered transfer before quantization.
type TransferRequest struct {
	RawAmount    float64 `json:"raw_amount"`
	GameID       GameID  `json:"game_id"`
	MinAmount    int64   `json:"min_amount"`
	MaxAmount    int64   `json:"max_amount"`
	ExchangeRate int64   `json:"exchange_rate"`
}

// Conversion is the quantized form of a raw amount.
type Conversion struct {
	QuantizedAmount int64 `json:"quantized_amount"` // wallet units actually moved
	ConvertedUnits  int64 `json:"converted_units"`  // game units received
}

// Violation names a failed transfer check.
type Violation string

const (
	ViolationBelowMin            Violation = "BELOW_MIN"
	ViolationAboveMax            Violation = "ABOVE_MAX"
	ViolationInsufficientBalance Violation = "INSUFFICIENT_BALANCE"
)

// ValidationResult is the outcome of the client-side transfer checks.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// Has reports whether v is among the violations.
func (r ValidationResult) Has(v Violation) bool {
	for _, got := range r.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// TransferPreview is everything a transfer form needs to render.
type TransferPreview struct {
	RawAmount    float64          `json:"raw_amount"`
	Conversion   Conversion       `json:"conversion"`
	Validation   ValidationResult `json:"validation"`
	CanConfirm   bool             `json:"can_confirm"`
	Limits       Limits           `json:"limits"`
	ExchangeRate int64            `json:"exchange_rate"`
	Display      PreviewDisplay   `json:"display"`
}

// PreviewDisplay holds formatted strings for the transfer form.
type PreviewDisplay struct {
	Min        string `json:"min"`
	Max        string `json:"max"`
	Rate       string `json:"rate"`
	PointsFrom string `json:"points_from"`
	PointsTo   string `json:"points_to"`
}

// TransferState is the per-attempt state machine.
type TransferState string

const (
	TransferStateIdle    TransferState = "IDLE"
	TransferStateLoading TransferState = "LOADING"
	TransferStateSuccess TransferState = "SUCCESS"
	TransferStateFailed  TransferState = "FAILED"
)

// TransferOutcome is the result of a confirmed transfer.
type TransferOutcome struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	Points int64  `json:"points"`
	Links  []Link `json:"links,omitempty"`
}

// TransferStatus is a snapshot of the coordinator.
// Last keeps the result of the previous attempt after State is back to IDLE.
type TransferStatus struct {
	State   TransferState `json:"state"`
	Last    TransferState `json:"last,omitempty"`
	Message string        `json:"message"`
	Balance Balance       `json:"balance"`
}

// Transfer journal statuses.
const (
	TransferRecordSuccess = "success"
	TransferRecordFailed  = "failed"
)

// TransferRecord is a journaled transfer attempt.
type TransferRecord struct {
	TransferID     string    `json:"transfer_id" db:"transfer_id"`         // Unique attempt id
	GameID         string    `json:"game_id" db:"game_id"`                 // Target game
	RawAmount      float64   `json:"raw_amount" db:"raw_amount"`           // Amount as entered
	Points         int64     `json:"points" db:"points"`                   // Quantized wallet units sent
	ConvertedUnits int64     `json:"converted_units" db:"converted_units"` // Game units
	Status         string    `json:"status" db:"status"`                   // success or failed
	Reason         string    `json:"reason" db:"reason"`                   // Failure reason, empty on success
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Attempt time
}
