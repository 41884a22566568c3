package booking

import (
	"context"
	"time"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/timezone"
)

type ValidateSlotInput struct {
	BarberID  uint
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	ServiceID uint
}

type ValidateSlot struct {
	repo schedule.Repository
	now  func() time.Time
}

func NewValidateSlot(repo schedule.Repository) *ValidateSlot {
	return &ValidateSlot{repo: repo, now: timezone.Now}
}

func rejected(reason string) *schedule.SlotValidation {
	return &schedule.SlotValidation{Valid: false, Reason: reason}
}

// Execute is the authoritative gate before a booking is committed. It
// re-derives everything from storage rather than trusting a slot list the
// caller fetched earlier, and short-circuits on the first failed check. A
// returned error is a persistence failure; domain rejections come back as an
// invalid SlotValidation with a reason.
func (uc *ValidateSlot) Execute(
	ctx context.Context,
	in ValidateSlotInput,
) (*schedule.SlotValidation, error) {

	requested, err := schedule.ParseDate(in.Date)
	if err != nil {
		return rejected("Invalid date"), nil
	}

	startMinutes, err := schedule.ParseClock(in.StartTime)
	if err != nil {
		return rejected("Invalid start time"), nil
	}

	now := uc.now()
	today, _ := schedule.ParseDate(now.Format("2006-01-02"))

	if requested.Before(today) {
		return rejected("Cannot book dates in the past"), nil
	}

	// Same-day slots honour the calculator's lead-time buffer here too, so
	// a slot the calculator already shows as unavailable cannot slip through
	// on a date-only check.
	if requested.Equal(today) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if startMinutes <= nowMinutes+schedule.LeadTimeMinutes {
			return rejected("Slot is too soon to book"), nil
		}
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return rejected("Barber not found"), nil
	}

	day := barber.WorkingHours.For(requested.Weekday())
	if !day.IsWorking {
		return rejected(msgNotWorking), nil
	}

	duration := schedule.DefaultSlotMinutes
	if in.ServiceID != 0 {
		if svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err == nil && svc != nil && svc.DurationMin > 0 {
			duration = svc.DurationMin
		}
	}
	endMinutes := startMinutes + duration

	workStart, err := schedule.ParseClock(day.Start)
	if err != nil {
		return rejected(msgNotWorking), nil
	}
	workEnd, err := schedule.ParseClock(day.End)
	if err != nil {
		return rejected(msgNotWorking), nil
	}

	if startMinutes < workStart || endMinutes > workEnd {
		return rejected("Slot is outside working hours"), nil
	}

	blocks, err := uc.repo.GetBlockedTimes(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, bt := range blocks {
		if bt.IsAllDay {
			return rejected(msgNotAvailable), nil
		}
	}

	bookings, err := uc.repo.GetBookingsByBarberAndDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if overlapsAny(startMinutes, endMinutes, clockIntervals(bookings, nil)) {
		return rejected("Slot overlaps with an existing appointment"), nil
	}

	if overlapsAny(startMinutes, endMinutes, clockIntervals(nil, blocks)) {
		return rejected("Slot overlaps with a blocked time"), nil
	}

	return &schedule.SlotValidation{Valid: true}, nil
}

// Resolve duration like the calculator does; exposed for the create flow so
// both derive the frozen end time from the same rule.
func (uc *ValidateSlot) SlotDuration(ctx context.Context, serviceID uint) int {
	if serviceID == 0 {
		return schedule.DefaultSlotMinutes
	}
	svc, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil || svc == nil || svc.DurationMin <= 0 {
		return schedule.DefaultSlotMinutes
	}
	return svc.DurationMin
}
