package validators

import (
	"testing"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateTransfer(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		min, max   int64
		wallet     float64
		valid      bool
		violations []models.Violation
	}{
		{
			name:   "below min",
			amount: 29, min: 30, max: 1000000, wallet: 100000,
			violations: []models.Violation{models.ViolationBelowMin},
		},
		{
			name:   "above max",
			amount: 2000000, min: 30, max: 1000000, wallet: 100000,
			violations: []models.Violation{models.ViolationAboveMax, models.ViolationInsufficientBalance},
		},
		{
			name:   "insufficient balance",
			amount: 500, min: 30, max: 1000000, wallet: 100,
			violations: []models.Violation{models.ViolationInsufficientBalance},
		},
		{
			name:   "valid",
			amount: 500, min: 30, max: 1000000, wallet: 1000,
			valid: true, violations: []models.Violation{},
		},
		{
			name:   "exact bounds",
			amount: 150, min: 150, max: 150, wallet: 150,
			valid: true, violations: []models.Violation{},
		},
		{
			name:   "zero amount with zero min",
			amount: 0, min: 0, max: 100, wallet: 100,
			violations: []models.Violation{models.ViolationBelowMin},
		},
		{
			name:   "points profile upper bound",
			amount: 100001, min: 150, max: 100000, wallet: 1000000,
			violations: []models.Violation{models.ViolationAboveMax},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateTransfer(tt.amount, tt.min, tt.max, tt.wallet)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.violations, got.Violations)
		})
	}
}

func TestCanConfirm(t *testing.T) {
	valid := models.ValidationResult{Valid: true}
	invalid := models.ValidationResult{Valid: false, Violations: []models.Violation{models.ViolationBelowMin}}

	assert.True(t, CanConfirm(valid, false))
	assert.False(t, CanConfirm(valid, true))
	assert.False(t, CanConfirm(invalid, false))
	assert.False(t, CanConfirm(invalid, true))
}

func TestPreview(t *testing.T) {
	p := Preview(59, models.LimitsModal, 30, 1000, false)

	assert.Equal(t, models.Conversion{QuantizedAmount: 30, ConvertedUnits: 1}, p.Conversion)
	assert.True(t, p.Validation.Valid)
	assert.True(t, p.CanConfirm)
	assert.Equal(t, "30K", p.Display.Min)
	assert.Equal(t, "1,000,000K", p.Display.Max)
	assert.Equal(t, "30=1", p.Display.Rate)
	assert.Equal(t, "30", p.Display.PointsFrom)
	assert.Equal(t, "1", p.Display.PointsTo)
}

func TestPreview_ValidatesQuantizedAmount(t *testing.T) {
	// 179 quantizes to 150, which passes the points profile minimum.
	p := Preview(179, models.LimitsPoints, 30, 1000, false)
	assert.Equal(t, int64(150), p.Conversion.QuantizedAmount)
	assert.True(t, p.Validation.Valid)

	// 149 quantizes to 120, below the minimum.
	p = Preview(149, models.LimitsPoints, 30, 1000, false)
	assert.False(t, p.Validation.Valid)
	assert.True(t, p.Validation.Has(models.ViolationBelowMin))
}

func TestPreview_DisabledWhileLoading(t *testing.T) {
	p := Preview(300, models.LimitsModal, 30, 1000, true)
	assert.True(t, p.Validation.Valid)
	assert.False(t, p.CanConfirm)
}

func TestCheckTransfer(t *testing.T) {
	tests := []struct {
		name       string
		req        models.TransferRequest
		wallet     float64
		conv       models.Conversion
		valid      bool
		violations []models.Violation
	}{
		{
			name:   "quantized down",
			req:    models.TransferRequest{RawAmount: 95, GameID: "12", MinAmount: 30, MaxAmount: 1000000, ExchangeRate: 30},
			wallet: 1000,
			conv:   models.Conversion{QuantizedAmount: 90, ConvertedUnits: 3},
			valid:  true,
		},
		{
			name:       "quantizes below min",
			req:        models.TransferRequest{RawAmount: 29, GameID: "12", MinAmount: 30, MaxAmount: 1000000, ExchangeRate: 30},
			wallet:     1000,
			conv:       models.Conversion{},
			violations: []models.Violation{models.ViolationBelowMin},
		},
		{
			name:       "over wallet",
			req:        models.TransferRequest{RawAmount: 600, GameID: "daga", MinAmount: 150, MaxAmount: 100000, ExchangeRate: 30},
			wallet:     500,
			conv:       models.Conversion{QuantizedAmount: 600, ConvertedUnits: 20},
			violations: []models.Violation{models.ViolationInsufficientBalance},
		},
		{
			name:       "zero rate",
			req:        models.TransferRequest{RawAmount: 300, MinAmount: 30, MaxAmount: 1000000},
			wallet:     1000,
			conv:       models.Conversion{},
			violations: []models.Violation{models.ViolationBelowMin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, result := CheckTransfer(tt.req, tt.wallet)
			assert.Equal(t, tt.conv, conv)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, tt.violations, result.Violations)
			}
		})
	}
}
