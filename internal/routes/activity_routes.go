package routes

import (
	"tembea/internal/controllers"
	"tembea/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ActivityRoutes(r *gin.Engine) {
	activities := r.Group("/activities")
	activities.Use(middleware.RequireAuth())
	{
		activities.GET("", controllers.ListActivities)
		activities.POST("", controllers.CreateActivity)
		activities.GET("/:id", controllers.GetActivity)
		activities.PUT("/:id", controllers.UpdateActivity)
		activities.DELETE("/:id", controllers.DeleteActivity)
	}
}
