package orderstore

import (
	"time"

	"github.com/jinzhu/now"
)

// Window is a rolling date filter for completed/delivered order lists.
type Window string

const (
	WindowAll   Window = ""
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query-string filter onto a Window; unknown values
// fall back to no filtering, matching the permissive original forms.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return Window(s)
	default:
		return WindowAll
	}
}

// Since returns the inclusive lower bound of the window relative to at.
// today = start of the same calendar date; week/month = start of day minus
// 7/30 days. ok is false for WindowAll.
func (w Window) Since(at time.Time) (since time.Time, ok bool) {
	day := now.New(at).BeginningOfDay()
	switch w {
	case WindowToday:
		return day, true
	case WindowWeek:
		return day.AddDate(0, 0, -7), true
	case WindowMonth:
		return day.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// EarliestDeliveryDate is the first calendar date a new order may request:
// strictly after today, i.e. tomorrow at start-of-day. No same-day delivery.
func EarliestDeliveryDate(at time.Time) time.Time {
	return now.New(at).BeginningOfDay().AddDate(0, 0, 1)
}

// ValidateDeliveryDate rejects requested dates earlier than tomorrow.
func ValidateDeliveryDate(requested, at time.Time) error {
	requestedDay := now.New(requested).BeginningOfDay()
	if requestedDay.Before(EarliestDeliveryDate(at)) {
		return ErrInvalidDeliveryDate
	}
	return nil
}
