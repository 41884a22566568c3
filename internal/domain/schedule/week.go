package schedule

import (
	"github.com/barbershop-booking/backend/internal/models"
)

// DayHours and WeekSchedule live in the models package so that models does
// not have to import this package (which already imports models for the
// Repository contract). The aliases keep the schedule-qualified names every
// consumer uses.

// DayHours is a single day's opening window.
type DayHours = models.DayHours

// WeekSchedule holds exactly one DayHours per weekday, indexed by
// time.Weekday (Sunday = 0). A zero entry means not working, so a schedule
// missing a day behaves the same as one that marks it closed.
type WeekSchedule = models.WeekSchedule
