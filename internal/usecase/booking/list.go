package booking

import (
	"context"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/models"
)

type ListBookings struct {
	repo schedule.Repository
}

func NewListBookings(repo schedule.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

type ListBookingsOutput struct {
	Bookings []models.Booking `json:"bookings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// Execute returns a page of bookings, optionally filtered by status.
func (uc *ListBookings) Execute(
	ctx context.Context,
	page, limit int,
	status string,
) (*ListBookingsOutput, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if status != "" && !schedule.Status(status).IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	bookings, total, err := uc.repo.ListBookings(ctx, page, limit, status)
	if err != nil {
		return nil, err
	}

	return &ListBookingsOutput{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}
