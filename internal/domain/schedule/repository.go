package schedule

import (
	"context"

	"github.com/barbershop-booking/backend/internal/models"
)

// Repository is the persistence contract the engine consumes. The engine
// only reads; the single write path (CreateBookingExclusive) exists so the
// conflict re-check and the insert share one transaction.
type Repository interface {
	// -------- Barbers (active only) --------
	GetBarberByID(ctx context.Context, id uint) (*models.Barber, error)
	GetBarbers(ctx context.Context) ([]models.Barber, error)

	// -------- Services --------
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)

	// -------- Bookings --------
	// GetBookingsByBarberAndDate excludes cancelled bookings.
	GetBookingsByBarberAndDate(ctx context.Context, barberID uint, date string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, page, limit int, status string) ([]models.Booking, int64, error)

	// CreateBookingExclusive inserts the booking inside a transaction that
	// re-counts overlapping non-cancelled bookings under a row lock, so two
	// concurrent commits for the same slot cannot both succeed. Conflicts
	// surface as the "slot_taken" business error.
	CreateBookingExclusive(ctx context.Context, bk *models.Booking) error
	UpdateBooking(ctx context.Context, bk *models.Booking) error

	// -------- Blocked times --------
	GetBlockedTimes(ctx context.Context, barberID uint, date string) ([]models.BlockedTime, error)
}
