package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the services matches at most one of these with errors.Is,
// except PartialFailureError which must be checked with errors.As first.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrCourierUnavailable = errors.New("courier service unavailable")
	ErrForbidden          = errors.New("forbidden")
	ErrNotModifiable      = errors.New("not modifiable")
)

var (
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrRestaurantNotFound = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrDeliveryNotFound   = fmt.Errorf("delivery %w", ErrNotFound)
	ErrCourierNotFound    = fmt.Errorf("courier %w", ErrNotFound)

	ErrMenuUnavailable = fmt.Errorf("menu unavailable: %w", ErrCatalogUnavailable)
	ErrMenuEmpty       = errors.New("restaurant menu is empty")

	ErrOrderNotModifiable   = fmt.Errorf("order is past Pending: %w", ErrNotModifiable)
	ErrOrderNotAssignable   = fmt.Errorf("order is not assignable: %w", ErrNotModifiable)
	ErrOrderAlreadyAssigned = fmt.Errorf("order already has an active delivery: %w", ErrNotModifiable)
	ErrCourierBusy          = fmt.Errorf("courier is not available: %w", ErrNotModifiable)
	ErrDeliveryTransition   = fmt.Errorf("delivery transition not allowed: %w", ErrNotModifiable)
)

// Validation wraps ErrValidation with a human readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidMenuItemsError lists the requested menu items that the restaurant's menu does not contain.
type InvalidMenuItemsError struct {
	IDs []string
}

func (e *InvalidMenuItemsError) Error() string {
	return "invalid menu items: " + strings.Join(e.IDs, ", ")
}

func (e *InvalidMenuItemsError) Is(target error) bool {
	return target == ErrValidation
}

// PartialFailureError is returned when a coordination sequence stopped after at least one
// mutating step was applied. Applied steps are listed in execution order, so a caller can
// re-drive the remaining ones.
type PartialFailureError struct {
	Operation  string
	FailedStep string
	Applied    []string
	Err        error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s partially applied (done: %s): step %s failed: %v",
		e.Operation, strings.Join(e.Applied, ", "), e.FailedStep, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
