package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barbershop-booking/backend/internal/cache"
	"github.com/barbershop-booking/backend/internal/config"
	"github.com/barbershop-booking/backend/internal/handlers"
	infraRepo "github.com/barbershop-booking/backend/internal/infra/repository"
	"github.com/barbershop-booking/backend/internal/media"
	"github.com/barbershop-booking/backend/internal/metrics"
	"github.com/barbershop-booking/backend/internal/middleware"
	"github.com/barbershop-booking/backend/internal/notify"
	ucBooking "github.com/barbershop-booking/backend/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store *cache.Cache,
	dispatcher *notify.Dispatcher,
	avatars *media.AvatarStore,
) {
	r.Use(middleware.CORSMiddleware())

	metrics.Register()

	catalogTTL := time.Duration(cfg.CatalogTTLSec) * time.Second

	// Infra singletons
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// Use cases
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	allBarbersUC := ucBooking.NewAllBarbersAvailability(bookingRepo, getAvailabilityUC)
	validateSlotUC := ucBooking.NewValidateSlot(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, validateSlotUC, dispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	transitionUC := ucBooking.NewTransition(bookingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, allBarbersUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC, transitionUC)
	serviceHandler := handlers.NewServiceHandler(db, store, catalogTTL)
	barberHandler := handlers.NewBarberHandler(db, store, catalogTTL, avatars)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(db)
	reminderHandler := handlers.NewReminderHandler(db, store, dispatcher, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Public surface
		api.GET("/availability", availabilityHandler.Get)
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.POST("/bookings", bookingHandler.Create)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Cron surface, guarded by the shared secret inside the handler
		api.GET("/cron/reminders", reminderHandler.Run)

		// Staff surface
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/bookings/:id/no-show", bookingHandler.NoShow)

			secured.POST("/blocked-times", blockedTimeHandler.Create)
			secured.GET("/blocked-times", blockedTimeHandler.List)
			secured.DELETE("/blocked-times/:id", blockedTimeHandler.Delete)

			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles("admin"))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)
				admin.POST("/barbers/:id/avatar", barberHandler.UploadAvatar)
			}
		}
	}
}
