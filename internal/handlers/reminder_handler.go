package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barbershop-booking/backend/internal/cache"
	"github.com/barbershop-booking/backend/internal/config"
	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/metrics"
	"github.com/barbershop-booking/backend/internal/models"
	"github.com/barbershop-booking/backend/internal/notify"
	"github.com/barbershop-booking/backend/internal/timezone"
)

// ReminderHandler drives the day-before reminder emails. It is invoked by an
// external cron hitting GET /api/cron/reminders with the shared secret.
type ReminderHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	notify *notify.Dispatcher
	config *config.Config
	now    func() time.Time
}

func NewReminderHandler(db *gorm.DB, c *cache.Cache, dispatcher *notify.Dispatcher, cfg *config.Config) *ReminderHandler {
	return &ReminderHandler{
		db:     db,
		cache:  c,
		notify: dispatcher,
		config: cfg,
		now:    timezone.Now,
	}
}

// Run enqueues a reminder for every confirmed booking happening tomorrow.
// A Redis SetNX per booking keeps reruns of the same cron window from
// mailing twice; without Redis the endpoint still works, just without the
// dedup guarantee.
func (h *ReminderHandler) Run(c *gin.Context) {
	if h.config.CronSecret == "" {
		httperr.Write(c, http.StatusServiceUnavailable, "cron_disabled", "CRON_SECRET is not configured")
		return
	}

	auth := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.config.CronSecret)) != 1 {
		httperr.Unauthorized(c, "invalid_cron_secret", "Invalid or missing cron secret")
		return
	}

	tomorrow := h.now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	if err := h.db.WithContext(c.Request.Context()).
		Where("date = ? AND status = ?", tomorrow, string(schedule.StatusConfirmed)).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "reminder_query_failed", "Failed to load bookings")
		return
	}

	sent := 0
	skipped := 0
	for i := range bookings {
		bk := &bookings[i]

		if h.cache != nil {
			key := fmt.Sprintf("reminder:%d:%s", bk.ID, bk.Date)
			fresh, err := h.cache.SetNX(c.Request.Context(), key, 48*time.Hour)
			if err != nil {
				log.Warn().Err(err).Uint("booking_id", bk.ID).Msg("reminder dedup check failed")
			} else if !fresh {
				skipped++
				continue
			}
		}

		h.notify.Dispatch(notify.Message{
			To:      bk.CustomerEmail,
			Subject: "Reminder: your appointment tomorrow",
			HTML:    notify.ReminderHTML(bk),
		})
		metrics.IncReminderSent()
		sent++
	}

	log.Info().Str("date", tomorrow).Int("sent", sent).Int("skipped", skipped).Msg("reminder run finished")

	c.JSON(http.StatusOK, gin.H{
		"date":    tomorrow,
		"sent":    sent,
		"skipped": skipped,
	})
}
