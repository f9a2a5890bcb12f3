package routes

import (
	"tembea/internal/controllers"
	"tembea/internal/middleware"
	"tembea/internal/models"

	"github.com/gin-gonic/gin"
)

func OwnerRoutes(r *gin.Engine) {
	owner := r.Group("/owner")
	owner.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	{
		owner.GET("/dashboard", controllers.OwnerDashboard)
	}
}
