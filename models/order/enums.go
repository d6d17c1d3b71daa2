package order

// Status is the closed set of order lifecycle states. An order only ever
// moves forward through the sequence; no handler writes any other value.
type Status string

const (
	StatusOpen             Status = "Open"
	StatusConfirmed        Status = "Confirmed"
	StatusReadyForDispatch Status = "Ready for Dispatch"
	StatusOutForDelivery   Status = "Out for Delivery"
	StatusDelivered        Status = "Delivered"
	// StatusCancelled exists in the schema vocabulary but no handler
	// transitions into it. Reserved.
	StatusCancelled Status = "Cancelled"
)

// statusRank orders the pipeline. Cancelled has no rank: it is not part of
// the forward sequence.
var statusRank = map[Status]int{
	StatusOpen:             0,
	StatusConfirmed:        1,
	StatusReadyForDispatch: 2,
	StatusOutForDelivery:   3,
	StatusDelivered:        4,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusConfirmed, StatusReadyForDispatch, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanAdvanceTo reports whether moving from s to next is a legal forward
// step of exactly one position in the pipeline.
func (s Status) CanAdvanceTo(next Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

// Before reports whether s comes earlier than other in the pipeline.
func (s Status) Before(other Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[other]
	if !ok {
		return false
	}
	return from < to
}

// AllStatuses returns every status the pipeline can hold.
func AllStatuses() []Status {
	return []Status{
		StatusOpen,
		StatusConfirmed,
		StatusReadyForDispatch,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}
