package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BelezaStudio/salon-agenda-api/internal/audit"
	"github.com/BelezaStudio/salon-agenda-api/internal/config"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/handlers"
	infraRepo "github.com/BelezaStudio/salon-agenda-api/internal/infra/repository"
	"github.com/BelezaStudio/salon-agenda-api/internal/infra/storage"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
	ucBooking "github.com/BelezaStudio/salon-agenda-api/internal/usecase/booking"
)

// RegisterRoutes monta a tabela método+padrão uma única vez na subida.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker domain.Locker,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	avatarSigner := storage.NewAvatarSigner(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	rescheduleUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	cancelUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	byCodeUC := ucBooking.NewGetBookingByCode(bookingRepo)
	upcomingUC := ucBooking.NewListUpcomingBookings(bookingRepo)
	resolveClientUC := ucBooking.NewResolveClient(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	salonHandler := handlers.NewSalonHandler(bookingRepo, avatarSigner)
	clientHandler := handlers.NewClientHandler(bookingRepo, resolveClientUC)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		updateStatusUC,
		rescheduleUC,
		cancelUC,
		byCodeUC,
		upcomingUC,
	)

	// ======================================================
	// 🌐 API (JSON) — consumida pelo agente de mensagens
	// ======================================================
	salon := r.Group("/salon/:salonId")
	salon.Use(middleware.TenantResolver())
	{
		// ------------------------------
		// CATÁLOGO (leitura aberta)
		// ------------------------------
		salon.GET("/info", salonHandler.Info)
		salon.GET("/services", salonHandler.ListServices)
		salon.GET("/professionals", salonHandler.ListProfessionals)
		salon.GET("/availability", bookingHandler.Availability)

		salon.GET("/booking/code/:code", bookingHandler.GetByCode)
		salon.GET("/bookings/upcoming", bookingHandler.Upcoming)
		salon.GET("/client", clientHandler.Get)

		// ------------------------------
		// ESCRITA (token do agente)
		// ------------------------------
		secured := salon.Group("/")
		secured.Use(middleware.AgentAuth(cfg.AgentJWTSecret))
		{
			secured.POST("/booking", bookingHandler.Create)
			secured.PATCH("/booking/:apptId/status", bookingHandler.UpdateStatus)
			secured.PUT("/booking/:apptId/reschedule", bookingHandler.Reschedule)
			secured.DELETE("/booking/:apptId", bookingHandler.Cancel)

			secured.POST("/client", clientHandler.Resolve)
		}
	}
}
