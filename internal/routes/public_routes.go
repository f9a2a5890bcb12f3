package routes

import (
	"tembea/internal/controllers"

	"github.com/gin-gonic/gin"
)

func PublicRoutes(r *gin.Engine) {
	r.GET("/categories", controllers.ListCategories)
	r.GET("/home-data", controllers.HomeData)

	// Booking creation is open to unauthenticated visitors
	r.POST("/bookings", controllers.CreateBooking)

	public := r.Group("/public")
	{
		public.GET("/activities", controllers.PublicActivities)
		public.GET("/activities/:id", controllers.ShowPublicActivity)
	}

	r.GET("/owners", controllers.ListOwners)
	r.GET("/owners/:id/activities", controllers.OwnerActivities)
}
