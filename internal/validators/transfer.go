package validators

import (
	"fmt"

	"github.com/sbilibin2017/gw-points-gateway/internal/catalog"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// ValidateTransfer checks amount against the limits and the wallet balance.
// Violations come back in a fixed order, each at most once.
// A non-positive amount is reported as BELOW_MIN.
func ValidateTransfer(amount float64, min, max int64, walletBalance float64) models.ValidationResult {
	violations := make([]models.Violation, 0, 3)

	if amount <= 0 || amount < float64(min) {
		violations = append(violations, models.ViolationBelowMin)
	}
	if amount > float64(max) {
		violations = append(violations, models.ViolationAboveMax)
	}
	if amount > walletBalance {
		violations = append(violations, models.ViolationInsufficientBalance)
	}

	return models.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// CanConfirm reports whether the confirm action is enabled.
func CanConfirm(result models.ValidationResult, loading bool) bool {
	return result.Valid && !loading
}

// CheckTransfer quantizes req.RawAmount and validates the quantized amount,
// the one actually sent, against the request limits and the wallet.
func CheckTransfer(req models.TransferRequest, walletBalance float64) (models.Conversion, models.ValidationResult) {
	conv := ComputeConversion(req.RawAmount, req.ExchangeRate)
	return conv, ValidateTransfer(float64(conv.QuantizedAmount), req.MinAmount, req.MaxAmount, walletBalance)
}

// Preview builds the transfer form state for a raw amount.
func Preview(rawAmount float64, limits models.Limits, exchangeRate int64, walletBalance float64, loading bool) models.TransferPreview {
	conv, result := CheckTransfer(models.TransferRequest{
		RawAmount:    rawAmount,
		MinAmount:    limits.Min,
		MaxAmount:    limits.Max,
		ExchangeRate: exchangeRate,
	}, walletBalance)

	return models.TransferPreview{
		RawAmount:    rawAmount,
		Conversion:   conv,
		Validation:   result,
		CanConfirm:   CanConfirm(result, loading),
		Limits:       limits,
		ExchangeRate: exchangeRate,
		Display: models.PreviewDisplay{
			Min:        catalog.FormatLimit(limits.Min),
			Max:        catalog.FormatLimit(limits.Max),
			Rate:       fmt.Sprintf("%d=1", exchangeRate),
			PointsFrom: catalog.FormatPoints(float64(conv.QuantizedAmount)),
			PointsTo:   catalog.FormatPoints(float64(conv.ConvertedUnits)),
		},
	}
}
