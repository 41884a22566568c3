package booking

import (
	"context"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/metrics"
	"github.com/barbershop-booking/backend/internal/models"
)

type Transition struct {
	repo schedule.Repository
}

func NewTransition(repo schedule.Repository) *Transition {
	return &Transition{repo: repo}
}

// Execute moves a booking to the target status. Terminal bookings reject
// every further transition.
func (uc *Transition) Execute(
	ctx context.Context,
	bookingID uint,
	target schedule.Status,
) (*models.Booking, error) {

	if !target.IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := schedule.CanTransition(schedule.Status(bk.Status), target); err != nil {
		return nil, err
	}

	bk.Status = string(target)
	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(target))
	return bk, nil
}
