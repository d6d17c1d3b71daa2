package orderstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	assert.Equal(t, WindowToday, ParseWindow("today"))
	assert.Equal(t, WindowWeek, ParseWindow("week"))
	assert.Equal(t, WindowMonth, ParseWindow("month"))

	// Unknown filters fall back to no filtering rather than erroring.
	assert.Equal(t, WindowAll, ParseWindow(""))
	assert.Equal(t, WindowAll, ParseWindow("year"))
	assert.Equal(t, WindowAll, ParseWindow("Today"))
}

func TestWindowSince(t *testing.T) {
	at := time.Date(2026, 9, 1, 15, 42, 10, 0, time.Local)
	startOfDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	since, ok := WindowToday.Since(at)
	require.True(t, ok)
	assert.Equal(t, startOfDay, since)

	since, ok = WindowWeek.Since(at)
	require.True(t, ok)
	assert.Equal(t, startOfDay.AddDate(0, 0, -7), since)

	since, ok = WindowMonth.Since(at)
	require.True(t, ok)
	assert.Equal(t, startOfDay.AddDate(0, 0, -30), since)

	_, ok = WindowAll.Since(at)
	assert.False(t, ok)
}

func TestEarliestDeliveryDate(t *testing.T) {
	// Late evening still resolves to tomorrow, not the day after.
	at := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), EarliestDeliveryDate(at))

	at = time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), EarliestDeliveryDate(at))
}

func TestValidateDeliveryDate(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)
	assert.NoError(t, ValidateDeliveryDate(tomorrow, at))

	nextWeek := time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local)
	assert.NoError(t, ValidateDeliveryDate(nextWeek, at))

	// Same-day delivery is never accepted, whatever the hour.
	today := time.Date(2026, 9, 1, 23, 0, 0, 0, time.Local)
	assert.ErrorIs(t, ValidateDeliveryDate(today, at), ErrInvalidDeliveryDate)

	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	assert.ErrorIs(t, ValidateDeliveryDate(yesterday, at), ErrInvalidDeliveryDate)
}
