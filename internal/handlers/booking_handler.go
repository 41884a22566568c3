package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/httpresp"
	"github.com/barbershop-booking/backend/internal/metrics"
	ucBooking "github.com/barbershop-booking/backend/internal/usecase/booking"
)

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	list       *ucBooking.ListBookings
	transition *ucBooking.Transition
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	list *ucBooking.ListBookings,
	transition *ucBooking.Transition,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		list:       list,
		transition: transition,
	}
}

type CreateBookingRequest struct {
	BarberID      uint   `json:"barber_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

// Create serves POST /api/bookings. A validator rejection is a 409 carrying
// the human-readable reason.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	bk, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	})
	if err != nil {
		var rejected ucBooking.ErrSlotRejected
		switch {
		case errors.As(err, &rejected):
			metrics.IncBookingRejected()
			httperr.Conflict(c, "slot_rejected", rejected.Reason)
		case httperr.IsBusiness(err, "slot_taken"):
			metrics.IncBookingRejected()
			httperr.Conflict(c, "slot_taken", "This time slot is no longer available")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barber not found")
		default:
			httperr.Internal(c, "booking_failed", "Failed to create booking")
		}
		return
	}

	httpresp.Created(c, bk)
}

// List serves GET /api/bookings for staff, paginated with an optional status
// filter.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	out, err := h.list.Execute(c.Request.Context(), page, limit, status)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "unknown booking status")
			return
		}
		httperr.Internal(c, "list_failed", "Failed to list bookings")
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) Confirm(c *gin.Context)  { h.applyTransition(c, schedule.StatusConfirmed) }
func (h *BookingHandler) Cancel(c *gin.Context)   { h.applyTransition(c, schedule.StatusCancelled) }
func (h *BookingHandler) Complete(c *gin.Context) { h.applyTransition(c, schedule.StatusCompleted) }
func (h *BookingHandler) NoShow(c *gin.Context)   { h.applyTransition(c, schedule.StatusNoShow) }

func (h *BookingHandler) applyTransition(c *gin.Context, target schedule.Status) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "booking id must be numeric")
		return
	}

	bk, err := h.transition.Execute(c.Request.Context(), uint(id), target)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Booking cannot transition to "+string(target))
		default:
			httperr.Internal(c, "transition_failed", "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, bk)
}
