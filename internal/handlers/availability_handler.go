package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/httpresp"
	"github.com/barbershop-booking/backend/internal/metrics"
	ucBooking "github.com/barbershop-booking/backend/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *ucBooking.GetAvailability
	allBarbers      *ucBooking.AllBarbersAvailability
}

func NewAvailabilityHandler(
	getAvailability *ucBooking.GetAvailability,
	allBarbers *ucBooking.AllBarbersAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		allBarbers:      allBarbers,
	}
}

// Get serves GET /api/availability. With barberId it returns the single
// barber's tagged slot list; without it, the aggregated mapping across all
// active barbers.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required")
		return
	}

	var serviceID uint
	if s := c.Query("serviceId"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "serviceId must be numeric")
			return
		}
		serviceID = uint(id)
	}

	metrics.IncAvailabilityRequests()

	barberParam := c.Query("barberId")
	if barberParam == "" {
		results, err := h.allBarbers.Execute(c.Request.Context(), date, serviceID)
		if err != nil {
			httperr.Internal(c, "availability_failed", "Failed to calculate availability")
			return
		}
		httpresp.OK(c, gin.H{"date": date, "barbers": results})
		return
	}

	barberID, err := strconv.ParseUint(barberParam, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barberId must be numeric")
		return
	}

	result, err := h.getAvailability.Execute(c.Request.Context(), schedule.AvailabilityInput{
		BarberID:  uint(barberID),
		Date:      date,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barber not found")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		default:
			httperr.Internal(c, "availability_failed", "Failed to calculate availability")
		}
		return
	}

	resp := gin.H{"date": date, "barber": result.Barber, "slots": result.Slots}
	if result.Message != "" {
		resp["message"] = result.Message
	}
	httpresp.OK(c, resp)
}
