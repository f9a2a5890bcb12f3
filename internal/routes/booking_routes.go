package routes

import (
	"tembea/internal/controllers"
	"tembea/internal/middleware"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(r *gin.Engine) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.GET("", controllers.ListBookings)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.PATCH("/:id/status", controllers.UpdateBookingStatus)
		bookings.DELETE("/:id", controllers.DeleteBooking)
	}
}
