package schedule

// DefaultSlotMinutes is used when no service was requested or the requested
// one does not resolve.
const DefaultSlotMinutes = 30

// LeadTimeMinutes is the fixed buffer before which same-day slots are not
// bookable.
const LeadTimeMinutes = 30

type AvailabilityInput struct {
	BarberID  uint
	Date      string // YYYY-MM-DD
	ServiceID uint   // 0 when no service was requested
}

// TimeSlot is derived output, recomputed on every query and never persisted
// or cached.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type BarberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AvailabilityResult carries the full tagged slot list. A non-empty Message
// marks a terminal non-error outcome (day off, all-day block) with an empty
// slot list.
type AvailabilityResult struct {
	Barber  BarberRef  `json:"barber"`
	Slots   []TimeSlot `json:"slots"`
	Message string     `json:"message,omitempty"`
}

// SlotValidation is the validator's verdict. Reason is human-readable and
// set exactly when Valid is false.
type SlotValidation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
