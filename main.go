package main

import (
	"fmt"
	"log"
	"os"

	"cotizapro-backend/config"
	"cotizapro-backend/models"
	"cotizapro-backend/routes"
	"cotizapro-backend/services"

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
		&models.Category{},
		&models.Service{},
		&models.PriceTier{},
		&models.Client{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.PriceSheet{},
		&models.EmailQuote{},
		&models.NotificationLog{},
	)
}

func main() {
	services.NewQuoteService(config.DB).StartExpiryScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
