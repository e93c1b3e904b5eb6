package routes

import (
	"net/http"
	"time"

	"smarthome/handlers"
	"smarthome/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers checkout and settlement endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-checkout-session", hb.CreateCheckoutSessionHandler)
	r.PATCH("/payment-success", hb.PaymentSuccessHandler)
	r.GET("/payment", middleware.FirebaseAuth(hb.TokenVerifier), hb.GetPaymentsHandler)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingStatusHandler)

		// Protected routes (Require Authentication)
		api.GET("/:email", middleware.FirebaseAuth(hb.TokenVerifier), hb.GetBookingsByEmailHandler)
	}
}

// RegisterServiceRoutes registers service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.GetServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
		api.POST("", hb.CreateServiceHandler)
		api.PATCH("/:id", hb.UpdateServiceHandler)
		api.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/users")
	{
		api.GET("", hb.GetUsersHandler)
		api.GET("/:email", hb.GetUserByEmailHandler)
		api.POST("", hb.CreateUserHandler)
		api.PATCH("/role/:email", hb.UpdateUserRoleHandler)
	}
}

// RegisterHealthRoute registers the health-check and banner endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", handlers.Root)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsConfig := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterPaymentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
}
