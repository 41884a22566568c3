package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-booking/backend/internal/cache"
	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/media"
	"github.com/barbershop-booking/backend/internal/models"
)

const barbersCacheKey = "catalog:barbers"

type BarberHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	cacheTTL time.Duration
	avatars  *media.AvatarStore
}

func NewBarberHandler(db *gorm.DB, c *cache.Cache, ttl time.Duration, avatars *media.AvatarStore) *BarberHandler {
	return &BarberHandler{db: db, cache: c, cacheTTL: ttl, avatars: avatars}
}

// List serves the public catalog of active barbers.
func (h *BarberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(ctx, barbersCacheKey); err == nil && ok {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	var barbers []models.Barber
	if err := h.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers")
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(barbers); err == nil {
			_ = h.cache.Set(ctx, barbersCacheKey, payload, h.cacheTTL)
		}
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id must be numeric")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND is_active = true", id).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	c.JSON(http.StatusOK, barber)
}

type BarberRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	Bio          string                 `json:"bio"`
	WorkingHours *schedule.WeekSchedule `json:"working_hours"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber := models.Barber{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Bio:      req.Bio,
		IsActive: true,
	}
	if req.WorkingHours != nil {
		barber.WorkingHours = *req.WorkingHours
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Failed to create barber")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, barber)
}

type BarberUpdateRequest struct {
	Name         *string                `json:"name"`
	Email        *string                `json:"email"`
	Phone        *string                `json:"phone"`
	Bio          *string                `json:"bio"`
	WorkingHours *schedule.WeekSchedule `json:"working_hours"`
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id must be numeric")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	var req BarberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Email != nil {
		barber.Email = *req.Email
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.WorkingHours != nil {
		barber.WorkingHours = *req.WorkingHours
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to update barber")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, barber)
}

// Delete soft-deletes: the barber disappears from availability and listings
// while historical bookings keep the denormalised name.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id must be numeric")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Barber{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Failed to delete barber")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadAvatar stores a barber photo as webp in object storage and persists
// the public URL.
func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "avatars_disabled", "Object storage is not configured")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "barber id must be numeric")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "avatar file is required")
		return
	}
	defer file.Close()

	url, err := h.avatars.Put(c.Request.Context(), barber.ID, file)
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Failed to store avatar")
		return
	}

	barber.AvatarURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Failed to update barber")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func (h *BarberHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(c.Request.Context(), barbersCacheKey)
	}
}
