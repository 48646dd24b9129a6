package routes

import (
	"cotizapro-backend/config"
	"cotizapro-backend/controllers"
	"cotizapro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PATCH("/users/:userId/role", utils.AuthorizeRole("admin"), controllers.UpdateUserRole)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		adminOnly := utils.AuthorizeRole("admin")

		// Category routes (writes are admin only)
		categories := api.Group("/categories")
		{
			categories.POST("", adminOnly, controllers.CreateCategory)
			categories.GET("", controllers.GetCategories)
			categories.GET("/:id", controllers.GetCategory)
			categories.PUT("/:id", adminOnly, controllers.UpdateCategory)
			categories.DELETE("/:id", adminOnly, controllers.DeleteCategory)
		}

		// Client routes (creation is admin only)
		clients := api.Group("/clients")
		{
			clients.POST("", adminOnly, controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
		}

		// Service routes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", controllers.CreateService)
			servicesGroup.GET("", controllers.GetServices)
			servicesGroup.GET("/:id", controllers.GetService)
			servicesGroup.PUT("/:id", controllers.UpdateService)
			servicesGroup.DELETE("/:id", controllers.DeleteService)
			servicesGroup.POST("/:id/price-tiers", controllers.CreatePriceTier)
			servicesGroup.GET("/:id/price-tiers", controllers.GetPriceTiers)
		}

		// Quote routes
		quotes := api.Group("/quotes")
		{
			quotes.POST("", controllers.CreateQuote)
			quotes.GET("", controllers.GetQuotes)
			quotes.GET("/:id", controllers.GetQuote)
			quotes.PATCH("/:id/status", controllers.UpdateQuoteStatus)
			quotes.POST("/email", controllers.ProcessEmailQuote)
		}

		// Price sheet routes
		priceSheets := api.Group("/price-sheets")
		{
			priceSheets.POST("", controllers.CreatePriceSheet)
			priceSheets.GET("", controllers.GetPriceSheets)
			priceSheets.GET("/:id", controllers.GetPriceSheet)
			priceSheets.PUT("/:id", controllers.UpdatePriceSheet)
			priceSheets.DELETE("/:id", controllers.DeletePriceSheet)
		}
	}

	return r
}
