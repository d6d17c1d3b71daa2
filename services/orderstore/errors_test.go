package orderstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitchef-backend/models/order"
)

func TestStateErrorMatchesInvalidState(t *testing.T) {
	err := &StateError{Expected: order.StatusConfirmed}
	assert.ErrorIs(t, err, ErrInvalidState)

	// Wrapping preserves the match so controllers can map it to a 409.
	wrapped := fmt.Errorf("mark ready: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidState)

	assert.False(t, errors.Is(err, ErrOrderNotFound))
}

func TestStateErrorMessage(t *testing.T) {
	err := &StateError{Expected: order.StatusOpen}
	assert.Equal(t, "Order is not in Open status", err.Error())

	err = &StateError{Expected: order.StatusReadyForDispatch, Message: "Order must be Ready for Dispatch"}
	assert.Equal(t, "Order must be Ready for Dispatch", err.Error())
}

func TestDishError(t *testing.T) {
	err := &DishError{DishID: 42}
	assert.Equal(t, "invalid or unavailable dish: 42", err.Error())

	var dishErr *DishError
	assert.True(t, errors.As(fmt.Errorf("create order: %w", err), &dishErr))
	assert.Equal(t, uint(42), dishErr.DishID)
}
