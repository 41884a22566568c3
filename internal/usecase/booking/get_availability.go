package booking

import (
	"context"
	"time"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/models"
	"github.com/barbershop-booking/backend/internal/timezone"
)

const (
	msgNotWorking   = "Barber is not working on this day"
	msgNotAvailable = "Barber is not available on this day"
)

type GetAvailability struct {
	repo schedule.Repository
	now  func() time.Time
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo, now: timezone.Now}
}

// Execute derives the full tagged slot list for one barber on one date.
// A day off or an all-day block is a terminal result with a message, not an
// error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in schedule.AvailabilityInput,
) (*schedule.AvailabilityResult, error) {

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	weekday, err := schedule.Weekday(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	result := &schedule.AvailabilityResult{
		Barber: schedule.BarberRef{ID: barber.ID, Name: barber.Name},
		Slots:  []schedule.TimeSlot{},
	}

	day := barber.WorkingHours.For(weekday)
	if !day.IsWorking {
		result.Message = msgNotWorking
		return result, nil
	}

	workStart, err := schedule.ParseClock(day.Start)
	if err != nil {
		result.Message = msgNotWorking
		return result, nil
	}
	workEnd, err := schedule.ParseClock(day.End)
	if err != nil {
		result.Message = msgNotWorking
		return result, nil
	}

	duration := uc.slotDuration(ctx, in.ServiceID)

	bookings, err := uc.repo.GetBookingsByBarberAndDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	blocks, err := uc.repo.GetBlockedTimes(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	for _, bt := range blocks {
		if bt.IsAllDay {
			result.Message = msgNotAvailable
			return result, nil
		}
	}

	booked := clockIntervals(bookings, nil)
	blocked := clockIntervals(nil, blocks)

	now := uc.now()
	isToday := in.Date == now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	// Stride equals duration so the grid tiles without gaps; cross-slot
	// collisions from differently sized prior bookings are caught by the
	// overlap check, not the grid.
	for _, slotStart := range schedule.GenerateSlots(workStart, workEnd, duration) {
		slotEnd := slotStart + duration

		available := !overlapsAny(slotStart, slotEnd, booked) &&
			!overlapsAny(slotStart, slotEnd, blocked)

		if available && isToday && slotStart <= nowMinutes+schedule.LeadTimeMinutes {
			available = false
		}

		result.Slots = append(result.Slots, schedule.TimeSlot{
			Time:      schedule.FormatClock(slotStart),
			Available: available,
		})
	}

	return result, nil
}

// slotDuration resolves the requested service's duration, falling back to
// the default when no service was given or it does not resolve.
func (uc *GetAvailability) slotDuration(ctx context.Context, serviceID uint) int {
	if serviceID == 0 {
		return schedule.DefaultSlotMinutes
	}
	svc, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil || svc == nil || svc.DurationMin <= 0 {
		return schedule.DefaultSlotMinutes
	}
	return svc.DurationMin
}

type interval struct {
	start int
	end   int
}

// clockIntervals parses booking and block windows into minute intervals,
// skipping rows with unparseable clock strings.
func clockIntervals(bookings []models.Booking, blocks []models.BlockedTime) []interval {
	out := make([]interval, 0, len(bookings)+len(blocks))
	for _, bk := range bookings {
		if iv, ok := toInterval(bk.StartTime, bk.EndTime); ok {
			out = append(out, iv)
		}
	}
	for _, bt := range blocks {
		if iv, ok := toInterval(bt.StartTime, bt.EndTime); ok {
			out = append(out, iv)
		}
	}
	return out
}

func toInterval(start, end string) (interval, bool) {
	s, err := schedule.ParseClock(start)
	if err != nil {
		return interval{}, false
	}
	e, err := schedule.ParseClock(end)
	if err != nil {
		return interval{}, false
	}
	return interval{start: s, end: e}, true
}

func overlapsAny(start, end int, ivs []interval) bool {
	for _, iv := range ivs {
		if schedule.Overlaps(start, end, iv.start, iv.end) {
			return true
		}
	}
	return false
}
