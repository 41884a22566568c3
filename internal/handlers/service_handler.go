package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-booking/backend/internal/cache"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/models"
)

const servicesCacheKey = "catalog:services"

type ServiceHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache, ttl time.Duration) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c, cacheTTL: ttl}
}

// List serves the public catalog of active services. The catalog is cached;
// slot lists never are.
func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(ctx, servicesCacheKey); err == nil && ok {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	var services []models.Service
	if err := h.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services")
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(services); err == nil {
			_ = h.cache.Set(ctx, servicesCacheKey, payload, h.cacheTTL)
		}
	}

	c.JSON(http.StatusOK, services)
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, svc)
}

type ServiceUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	DurationMin *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"is_active"`
}

// Update edits a service. Existing bookings keep the end time frozen at
// creation, so a duration change only affects future bookings.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "service id must be numeric")
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "duration must be positive")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, svc)
}

// Delete deactivates a service. Rows are kept so historical bookings stay
// consistent.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "service id must be numeric")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ServiceHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(c.Request.Context(), servicesCacheKey)
	}
}
