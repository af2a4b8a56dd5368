package routes

import (
	"net/http"

	"hotelbooking/constants"
	"hotelbooking/controllers"
	middlewares "hotelbooking/middleware"
	"hotelbooking/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Hotels       *controllers.HotelController
	Bookings     *controllers.BookingController
	Reviews      *controllers.ReviewController
	Contact      *controllers.ContactController
	Users        *controllers.UserController
	Admin        *controllers.AdminController
	Notification *controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, tokens middlewares.TokenParser, log logger.Logger) {
	router.Use(middlewares.Recovery(log), middlewares.RequestLogger(log), middlewares.Metrics())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middlewares.RequireAuth(tokens)
	requireAdmin := middlewares.RequireRole(constants.RoleAdmin)

	// Booking events carry guest data, so the feed is for admins only.
	if ctrl.Notification != nil {
		router.GET("/ws", requireAuth, requireAdmin, ctrl.Notification.HandleWebSocket)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", ctrl.Auth.Register)
	v1.POST("/auth/login", ctrl.Auth.Login)

	v1.GET("/hotels/featured", ctrl.Hotels.Featured)
	v1.GET("/hotels/search", ctrl.Hotels.Search)
	v1.GET("/hotels/:id", ctrl.Hotels.Detail)
	v1.GET("/search/last", ctrl.Hotels.LastFilters)
	v1.DELETE("/search/last", ctrl.Hotels.ClearLastFilters)

	v1.POST("/bookings", requireAuth, ctrl.Bookings.Create)
	v1.POST("/bookings/:id/cancel", requireAuth, ctrl.Bookings.Cancel)
	v1.POST("/hotels/:id/reviews", requireAuth, ctrl.Reviews.Create)
	v1.GET("/profile", requireAuth, ctrl.Users.Profile)

	v1.POST("/contact", ctrl.Contact.Send)

	admin := v1.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/stats", ctrl.Admin.Stats)
	admin.GET("/hotels", ctrl.Admin.ListHotels)
	admin.GET("/bookings", ctrl.Admin.ListBookings)
	admin.GET("/users", ctrl.Admin.ListUsers)
	admin.POST("/hotels", ctrl.Admin.CreateHotel)
	admin.POST("/hotels/:id/rooms", ctrl.Admin.AddRoom)
	admin.POST("/images", ctrl.Admin.UploadImages)
	if ctrl.Notification != nil {
		admin.POST("/notify", ctrl.Notification.NotifyAll)
	}
}
