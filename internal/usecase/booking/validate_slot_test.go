package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbershop-booking/backend/internal/models"
)

func TestValidateSlotRejections(t *testing.T) {
	repo := newFakeRepo()
	barber := weekdayBarber(repo)
	svc := haircut(repo)
	repo.addBooking(models.Booking{
		BarberID: barber.ID, Date: monday,
		StartTime: "10:00", EndTime: "10:30",
	})
	repo.addBlock(models.BlockedTime{
		BarberID: barber.ID, Date: monday,
		StartTime: "12:00", EndTime: "13:00",
	})

	uc := NewValidateSlot(repo)
	uc.now = fixedNow

	tests := []struct {
		name       string
		in         ValidateSlotInput
		wantReason string
	}{
		{
			name:       "malformed date",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: "02/03/2026", StartTime: "10:00"},
			wantReason: "Invalid date",
		},
		{
			name:       "malformed start time",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "ten"},
			wantReason: "Invalid start time",
		},
		{
			name:       "past date",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: "2026-01-15", StartTime: "10:00"},
			wantReason: "Cannot book dates in the past",
		},
		{
			name:       "unknown barber",
			in:         ValidateSlotInput{BarberID: 999, Date: monday, StartTime: "11:00"},
			wantReason: "Barber not found",
		},
		{
			name:       "day off",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: sunday, StartTime: "11:00"},
			wantReason: "Barber is not working on this day",
		},
		{
			name:       "before opening",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "08:30", ServiceID: svc.ID},
			wantReason: "Slot is outside working hours",
		},
		{
			name:       "runs past closing",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "17:45", ServiceID: svc.ID},
			wantReason: "Slot is outside working hours",
		},
		{
			name:       "collides with booking",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "10:00", ServiceID: svc.ID},
			wantReason: "Slot overlaps with an existing appointment",
		},
		{
			name:       "partially collides with booking",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "09:45", ServiceID: svc.ID},
			wantReason: "Slot overlaps with an existing appointment",
		},
		{
			name:       "collides with blocked time",
			in:         ValidateSlotInput{BarberID: barber.ID, Date: monday, StartTime: "12:30", ServiceID: svc.ID},
			wantReason: "Slot overlaps with a blocked time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := uc.Execute(context.Background(), tt.in)
			require.NoError(t, err)
			assert.False(t, verdict.Valid)
			assert.Equal(t, tt.wantReason, verdict.Reason)
		})
	}
}

func TestValidateSlotAccepts(t *testing.T) {
	repo := newFakeRepo()
	barber := weekdayBarber(repo)
	svc := haircut(repo)
	repo.addBooking(models.Booking{
		BarberID: barber.ID, Date: monday,
		StartTime: "10:00", EndTime: "10:30",
	})

	uc := NewValidateSlot(repo)
	uc.now = fixedNow

	tests := []string{"09:00", "09:30", "10:30", "17:30"}
	for _, start := range tests {
		t.Run(start, func(t *testing.T) {
			verdict, err := uc.Execute(context.Background(), ValidateSlotInput{
				BarberID:  barber.ID,
				Date:      monday,
				StartTime: start,
				ServiceID: svc.ID,
			})
			require.NoError(t, err)
			assert.True(t, verdict.Valid, verdict.Reason)
		})
	}
}

func TestValidateSlotAllDayBlock(t *testing.T) {
	repo := newFakeRepo()
	barber := weekdayBarber(repo)
	repo.addBlock(models.BlockedTime{
		BarberID: barber.ID, Date: monday,
		StartTime: "00:00", EndTime: "23:59", IsAllDay: true,
	})

	uc := NewValidateSlot(repo)
	uc.now = fixedNow

	verdict, err := uc.Execute(context.Background(), ValidateSlotInput{
		BarberID: barber.ID, Date: monday, StartTime: "11:00",
	})
	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Barber is not available on this day", verdict.Reason)
}

func TestValidateSlotSameDayLeadTime(t *testing.T) {
	repo := newFakeRepo()
	barber := weekdayBarber(repo)

	uc := NewValidateSlot(repo)
	// Monday 10:10
	uc.now = func() time.Time {
		return time.Date(2026, 3, 2, 10, 10, 0, 0, time.UTC)
	}

	verdict, err := uc.Execute(context.Background(), ValidateSlotInput{
		BarberID: barber.ID, Date: monday, StartTime: "10:30",
	})
	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Slot is too soon to book", verdict.Reason)

	verdict, err = uc.Execute(context.Background(), ValidateSlotInput{
		BarberID: barber.ID, Date: monday, StartTime: "11:00",
	})
	require.NoError(t, err)
	assert.True(t, verdict.Valid)
}

// Two sequential validations of the same free slot both pass: the validator
// alone cannot serialise concurrent bookings, which is exactly why the
// create path re-checks inside the storage transaction.
func TestValidateSlotIsOptimistic(t *testing.T) {
	repo := newFakeRepo()
	barber := weekdayBarber(repo)
	svc := haircut(repo)

	uc := NewValidateSlot(repo)
	uc.now = fixedNow

	in := ValidateSlotInput{
		BarberID:  barber.ID,
		Date:      monday,
		StartTime: "11:00",
		ServiceID: svc.ID,
	}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, first.Valid)
	assert.True(t, second.Valid)
}
