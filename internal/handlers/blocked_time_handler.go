package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/httpresp"
	"github.com/barbershop-booking/backend/internal/models"
)

type BlockedTimeHandler struct {
	db *gorm.DB
}

func NewBlockedTimeHandler(db *gorm.DB) *BlockedTimeHandler {
	return &BlockedTimeHandler{db: db}
}

type BlockedTimeRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
	IsAllDay  bool   `json:"is_all_day"`
}

// Create registers an unavailability window. An all-day block conventionally
// stores 00:00/23:59. Blocks may overlap each other, only the validator keeps
// bookings away from them.
func (h *BlockedTimeHandler) Create(c *gin.Context) {
	var req BlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := schedule.ParseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	if req.IsAllDay {
		req.StartTime = "00:00"
		req.EndTime = "23:59"
	} else {
		start, err := schedule.ParseClock(req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_time", "start_time must be HH:MM")
			return
		}
		end, err := schedule.ParseClock(req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_time", "end_time must be HH:MM")
			return
		}
		if start >= end {
			httperr.BadRequest(c, "invalid_range", "start_time must be before end_time")
			return
		}
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND is_active = true", req.BarberID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	block := models.BlockedTime{
		BarberID:  req.BarberID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		IsAllDay:  req.IsAllDay,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Failed to block time")
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barberId is required and must be numeric")
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required")
		return
	}

	var blocks []models.BlockedTime
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Failed to list blocked times")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "blocked time id must be numeric")
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&models.BlockedTime{}, id)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_block", "Failed to delete blocked time")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "block_not_found", "Blocked time not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
