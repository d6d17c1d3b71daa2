package orderstore

import (
	"errors"
	"fmt"

	"fitchef-backend/models/order"
)

// Errors returned by the order store. Controllers map these onto HTTP
// statuses; anything else is treated as internal.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrChefNotFound    = errors.New("chef not found")
	ErrAgentNotFound   = errors.New("agent not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidState    = errors.New("order is in the wrong status")
	ErrNoAgentAssigned = errors.New("assign a delivery agent first")

	ErrEmptyItems          = errors.New("at least one item is required")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidDeliveryDate = errors.New("delivery date must be tomorrow or later; orders cannot be delivered on the same day")
	ErrNoChefAvailable     = errors.New("no chef available for assignment")
)

// StateError is a precondition failure: the order exists but its current
// status does not match what the transition requires. It matches
// ErrInvalidState under errors.Is.
type StateError struct {
	Expected order.Status
	// Message overrides the default text when set.
	Message string
}

func (e *StateError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Order is not in %s status", e.Expected)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// DishError reports an invalid or unavailable dish id in a creation
// request. The whole creation is aborted; no partial order survives.
type DishError struct {
	DishID uint
}

func (e *DishError) Error() string {
	return fmt.Sprintf("invalid or unavailable dish: %d", e.DishID)
}
