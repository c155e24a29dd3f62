package routes

import (
	"bookacut-backend/config"
	"bookacut-backend/controllers"
	"bookacut-backend/models"
	"bookacut-backend/services"
	"bookacut-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	store := services.NewDBStore(config.DB)
	bookingController := controllers.NewBookingController(
		services.NewBookingService(store, store),
	)
	notesController := controllers.NewNotesController(services.NewNoteStore())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public booking surface: anyone can see the catalog and book a slot
	bookings := r.Group("/api/bookings")
	{
		bookings.GET("/options", controllers.Options)
		bookings.POST("", bookingController.Book)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service catalog: readable by any signed-in user, managed by admins
		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.GET("", controllers.GetServices)
			serviceRoutes.GET("/:id", controllers.GetService)

			serviceRoutes.Use(utils.RequireRole(models.RoleAdmin))
			serviceRoutes.POST("", controllers.CreateService)
			serviceRoutes.PUT("/:id", controllers.UpdateService)
			serviceRoutes.DELETE("/:id", controllers.DeleteService)
		}

		// Stylist roster, managed by admins
		stylists := api.Group("/stylists")
		{
			stylists.GET("", controllers.GetStylists)
			stylists.POST("", utils.RequireRole(models.RoleAdmin), controllers.CreateStylist)
			stylists.PUT("/:id", utils.RequireRole(models.RoleAdmin), controllers.UpdateStylist)
		}

		// Stylist self-managed profile
		profile := api.Group("/profile", utils.RequireRole(models.RoleStylist))
		{
			profile.GET("", controllers.GetMyProfile)
			profile.PUT("", controllers.UpsertMyProfile)
		}

		// Schedule calendar: stylists may look, only admins manage it
		calendar := api.Group("/calendar")
		{
			calendar.GET("", utils.RequireRole(models.RoleAdmin, models.RoleStylist), controllers.GetCalendar)

			manage := calendar.Group("", utils.RequireRole(models.RoleAdmin))
			{
				manage.POST("/unavailability", controllers.CreateUnavailability)
				manage.DELETE("/unavailability/:id", controllers.DeleteUnavailability)
				manage.DELETE("/appointments/:id", controllers.DeleteAppointment)
			}
		}

		// Calendar notes demo (in-memory, per process)
		notes := api.Group("/notes")
		{
			notes.GET("", notesController.Month)
			notes.GET("/upcoming", notesController.Upcoming)
			notes.POST("", notesController.Save)
			notes.DELETE("/:date", notesController.Delete)
		}
	}

	return r
}
