package main

import (
	"fmt"
	"log"
	"os"

	"bookacut-backend/config"
	"bookacut-backend/models"
	"bookacut-backend/routes"
	"bookacut-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Stylist{},
		&models.Appointment{},
		&models.StylistUnavailability{},
		&models.ReminderLog{},
	)

	seedCatalog()
	seedAdmin()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedCatalog loads the default services and stylists when the tables are
// empty, so that a fresh database is immediately bookable.
func seedCatalog() {
	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count == 0 {
		defaults := []models.Service{
			{Name: "Haircut", Price: 25},
			{Name: "Hair Styling", Price: 40},
			{Name: "Hair Coloring", Price: 80},
			{Name: "Beard Trim", Price: 15},
		}
		for i := range defaults {
			defaults[i].IsActive = true
			if err := config.DB.Create(&defaults[i]).Error; err != nil {
				log.Printf("Failed to seed service %s: %v", defaults[i].Name, err)
			}
		}
	}

	config.DB.Model(&models.Stylist{}).Count(&count)
	if count == 0 {
		for _, name := range []string{"Alex", "Jordan", "Sam"} {
			stylist := models.Stylist{Name: name, IsActive: true}
			if err := config.DB.Create(&stylist).Error; err != nil {
				log.Printf("Failed to seed stylist %s: %v", name, err)
			}
		}
	}
}

// seedAdmin creates the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD on first boot. Registration never hands out the admin
// role, so this is the only way in.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		Email:    email,
		Password: password, // Hashed in BeforeCreate hook
		Name:     "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
