package schedule

import "github.com/barbershop-booking/backend/internal/httperr"

// Status is a booking's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions. Terminal
// bookings never count toward overlap checks (cancelled) or future conflicts
// (completed, no_show).
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
}

// CanTransition validates a status change. Terminal states reject every
// transition.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// InitialStatus is the status assigned to a freshly created booking.
func InitialStatus() Status {
	return StatusConfirmed
}
