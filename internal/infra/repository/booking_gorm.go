package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbers (active only)
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = true", id).
		First(&barber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).First(&svc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingsByBarberAndDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(schedule.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	err := r.db.WithContext(ctx).First(&bk, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bk, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	page, limit int,
	status string,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := q.
		Order("date DESC, start_time DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// CreateBookingExclusive re-counts overlapping non-cancelled bookings under
// a row lock inside the insert transaction, so the optimistic validator
// cannot be raced by a concurrent commit for the same slot. Zero-padded
// HH:MM strings compare correctly lexicographically.
func (r *BookingGormRepository) CreateBookingExclusive(
	ctx context.Context,
	bk *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
				bk.BarberID,
				bk.Date,
				string(schedule.StatusCancelled),
				bk.EndTime,
				bk.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(bk).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(bk).Error
}

// --------------------------------------------------
// Blocked times
// --------------------------------------------------

func (r *BookingGormRepository) GetBlockedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Compile-time check
var _ schedule.Repository = (*BookingGormRepository)(nil)
