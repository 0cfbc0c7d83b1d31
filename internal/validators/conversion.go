// Package validators converts and validates points transfers.
// Every function here is pure.
package validators

import (
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// ComputeConversion quantizes rawAmount to whole game units.
// Division truncates toward zero. Negative, NaN and infinite input count as zero,
// as does a non-positive rate.
func ComputeConversion(rawAmount float64, exchangeRate int64) models.Conversion {
	if exchangeRate <= 0 || math.IsNaN(rawAmount) || math.IsInf(rawAmount, 0) || rawAmount <= 0 {
		return models.Conversion{}
	}

	maxUnits := int64(math.MaxInt64) / exchangeRate
	units := math.Trunc(rawAmount / float64(exchangeRate))

	converted := maxUnits
	if units < float64(maxUnits) {
		converted = int64(units)
	}
	return models.Conversion{
		QuantizedAmount: converted * exchangeRate,
		ConvertedUnits:  converted,
	}
}

// ParseAmount reads a user-entered amount. Anything that is not a finite,
// non-negative number is zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
