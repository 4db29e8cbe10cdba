package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adventureawaits/api/internal/config"
	"github.com/adventureawaits/api/internal/container"
	"github.com/adventureawaits/api/internal/handlers"
	"github.com/adventureawaits/api/internal/middleware"
	"github.com/adventureawaits/api/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(cfg *config.Config, container *container.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "adventureawaits-api",
			})
		})

		// public routes
		v1.POST("/auth/register", handlers.Register(container.UserService))
		v1.POST("/auth/login", handlers.Login(cfg, container.UserService))

		v1.GET("/hotels", handlers.ListHotels(container.CatalogService))
		v1.GET("/hotels/:id", handlers.GetHotel(container.CatalogService))
		v1.GET("/restaurants", handlers.ListRestaurants(container.CatalogService))
		v1.GET("/restaurants/:id", handlers.GetRestaurant(container.CatalogService))
		v1.GET("/attractions", handlers.ListAttractions(container.CatalogService))
		v1.GET("/attractions/:id", handlers.GetAttraction(container.CatalogService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Logger))

	protected.POST("/auth/logout", handlers.Logout(cfg))
	protected.GET("/profile", handlers.Me(container.UserService))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/upcoming", handlers.ListUpcomingBookings(container.BookingService))
		bookingRoutes.GET("/past", handlers.ListPastBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PUT("/:id", handlers.UpdateBooking(container.BookingService))
		bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(container.BookingService))
	}

	favoriteRoutes := protected.Group("/favorites")
	{
		favoriteRoutes.GET("", handlers.ListFavorites(container.FavoriteService))
		favoriteRoutes.GET("/:type/:id", handlers.CheckFavorite(container.FavoriteService))
		favoriteRoutes.POST("/:type/:id", handlers.AddFavorite(container.FavoriteService))
		favoriteRoutes.DELETE("/:type/:id", handlers.RemoveFavorite(container.FavoriteService))
	}

	budgetRoutes := protected.Group("/budgets")
	{
		budgetRoutes.POST("", handlers.CreateBudget(container.BudgetService))
		budgetRoutes.GET("", handlers.ListBudgets(container.BudgetService))
		budgetRoutes.GET("/:id", handlers.GetBudget(container.BudgetService))
		budgetRoutes.PUT("/:id", handlers.UpdateBudget(container.BudgetService))
		budgetRoutes.DELETE("/:id", handlers.DeleteBudget(container.BudgetService))
	}

	admin := protected.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/hotels", handlers.CreateHotel(container.CatalogService))
		admin.PUT("/hotels/:id", handlers.UpdateCatalogItem(container.CatalogService, models.TypeHotel))
		admin.DELETE("/hotels/:id", handlers.DeleteCatalogItem(container.CatalogService, models.TypeHotel))

		admin.POST("/restaurants", handlers.CreateRestaurant(container.CatalogService))
		admin.PUT("/restaurants/:id", handlers.UpdateCatalogItem(container.CatalogService, models.TypeRestaurant))
		admin.DELETE("/restaurants/:id", handlers.DeleteCatalogItem(container.CatalogService, models.TypeRestaurant))

		admin.POST("/attractions", handlers.CreateAttraction(container.CatalogService))
		admin.PUT("/attractions/:id", handlers.UpdateCatalogItem(container.CatalogService, models.TypeAttraction))
		admin.DELETE("/attractions/:id", handlers.DeleteCatalogItem(container.CatalogService, models.TypeAttraction))

		admin.DELETE("/bookings/:id", handlers.DeleteBooking(container.BookingService))
	}

	return r
}
