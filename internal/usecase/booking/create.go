package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/metrics"
	"github.com/barbershop-booking/backend/internal/models"
	"github.com/barbershop-booking/backend/internal/notify"
)

type CreateBookingInput struct {
	UserID        *uint
	BarberID      uint
	ServiceID     uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	Notes         string
}

type CreateBooking struct {
	repo     schedule.Repository
	validate *ValidateSlot
	notify   *notify.Dispatcher
}

func NewCreateBooking(
	repo schedule.Repository,
	validate *ValidateSlot,
	dispatcher *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		validate: validate,
		notify:   dispatcher,
	}
}

// ErrSlotRejected wraps a validator rejection so the handler can surface the
// reason as a conflict.
type ErrSlotRejected struct {
	Reason string
}

func (e ErrSlotRejected) Error() string { return e.Reason }

// Execute validates the slot and commits the booking. The insert itself runs
// through the repository's exclusive path, so a race that slips past the
// optimistic validator is still caught by the storage-level re-check.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	verdict, err := uc.validate.Execute(ctx, ValidateSlotInput{
		BarberID:  in.BarberID,
		Date:      in.Date,
		StartTime: in.StartTime,
		ServiceID: in.ServiceID,
	})
	if err != nil {
		return nil, err
	}
	if !verdict.Valid {
		return nil, ErrSlotRejected{Reason: verdict.Reason}
	}

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	startMinutes, _ := schedule.ParseClock(in.StartTime)
	endTime := schedule.FormatClock(startMinutes + svc.DurationMin)

	bk := &models.Booking{
		UserID:        in.UserID,
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       endTime,
		Status:        string(schedule.InitialStatus()),
		Notes:         in.Notes,

		ServiceName:  svc.Name,
		ServicePrice: svc.Price,
		BarberName:   barber.Name,

		ConfirmationCode: uuid.NewString(),
	}

	if err := uc.repo.CreateBookingExclusive(ctx, bk); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated(bk.Status)

	// Fire-and-forget: the contract is "booking persisted", not
	// "notification delivered".
	uc.notify.Dispatch(notify.Message{
		To:      bk.CustomerEmail,
		Subject: "Booking Confirmed - Barbershop",
		HTML:    notify.ConfirmationHTML(bk),
	})

	return bk, nil
}
