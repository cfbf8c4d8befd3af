package routes

import (
	"net/http"

	"hospital-management-server/internal/cache"
	"hospital-management-server/internal/config"
	"hospital-management-server/internal/handlers"
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and registers the API routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, c cache.Cache, cfg *config.Config, log *zap.Logger) {
	// Repositories
	users := repository.NewUserRepository(db)
	hospitals := repository.NewHospitalRepository(db)
	doctors := repository.NewDoctorRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	notifications := repository.NewNotificationRepository(db)
	reviews := repository.NewReviewRepository(db)
	capacity := repository.NewCapacityRepository(db)
	bloodBanks := repository.NewBloodBankRepository(db)

	// Services
	notificationService := services.NewNotificationService(notifications)
	authService := services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL())
	hospitalService := services.NewHospitalService(hospitals, doctors, capacity)
	appointmentService := services.NewAppointmentService(appointments, hospitals, notificationService, log)
	reviewService := services.NewReviewService(reviews, hospitals, log)
	capacityService := services.NewCapacityService(capacity, hospitals)
	bloodBankService := services.NewBloodBankService(bloodBanks, c, cfg.Redis.CacheTTL, log)
	exportService := services.NewExportService(hospitals, doctors)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg, log)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	capacityHandler := handlers.NewCapacityHandler(capacityService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	reportHandler := handlers.NewReportHandler(appointmentService, log)
	bloodBankHandler := handlers.NewBloodBankHandler(bloodBankService, log)
	exportHandler := handlers.NewExportHandler(exportService, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthPer, cfg.RateLimit.AuthBlock)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/signup", limiter.Limit(), authHandler.Signup)
			authRoutes.POST("/login", limiter.Limit(), authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
		}

		public.GET("/hospitals/search", hospitalHandler.Search)
		public.GET("/hospitals/:id", hospitalHandler.GetHospital)
		public.GET("/blood/availability", bloodBankHandler.GetAvailability)
		public.GET("/reviews", reviewHandler.GetReviews)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		private.GET("/auth/check", authHandler.Check)

		// Any role may read its own profile; only hospitals write one
		private.GET("/hospitals/profile", hospitalHandler.GetProfile)

		hospitalOnly := private.Group("")
		hospitalOnly.Use(middleware.RoleAuthMiddleware(models.RoleHospital))
		{
			hospitalOnly.POST("/hospitals/profile", hospitalHandler.UpsertProfile)
			hospitalOnly.GET("/doctors", hospitalHandler.GetDoctors)
			hospitalOnly.POST("/doctors", hospitalHandler.AddDoctor)
			hospitalOnly.POST("/beds", capacityHandler.UpsertBeds)
			hospitalOnly.POST("/blood", capacityHandler.UpsertBlood)
			hospitalOnly.PATCH("/appointments/:id", appointmentHandler.UpdateAppointmentStatus)
		}

		patientOnly := private.Group("")
		patientOnly.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			patientOnly.POST("/appointments", appointmentHandler.CreateAppointment)
			patientOnly.POST("/reviews", reviewHandler.SubmitReview)
		}

		// Role-dependent behaviour is resolved inside the services
		private.GET("/appointments", appointmentHandler.GetAppointments)

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.POST("", notificationHandler.CreateNotification)
			notificationRoutes.PATCH("", notificationHandler.MarkRead)
		}

		private.GET("/reports", reportHandler.GetReport)
		private.GET("/export/hospitals-doctors", exportHandler.HospitalsDoctors)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
