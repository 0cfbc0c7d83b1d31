package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

var (
	// ErrConfig is returned when the backend base URL cannot be discovered.
	ErrConfig = errors.New("backend configuration unavailable")
	// ErrAuth is returned when login is rejected or no session exists.
	ErrAuth = errors.New("authentication failed")
	// ErrFetch is returned when a backend read fails.
	ErrFetch = errors.New("backend read failed")
	// ErrTransfer is returned when the transfer call fails.
	ErrTransfer = errors.New("transfer failed")
	// ErrValidation is returned when a transfer fails client-side checks.
	ErrValidation = errors.New("transfer rejected")
	// ErrTransferInProgress is returned for a confirm while another transfer is loading.
	ErrTransferInProgress = errors.New("transfer already in progress")
	// ErrNoGameSelected is returned when no game id can be resolved for a transfer.
	ErrNoGameSelected = fmt.Errorf("%w: game id not found", ErrValidation)
)

// ValidationError carries the violations of a rejected transfer.
type ValidationError struct {
	Amount     int64
	Violations []models.Violation
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		names[i] = string(v)
	}
	return fmt.Sprintf("%s: amount %d violates %s", ErrValidation, e.Amount, strings.Join(names, ", "))
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
