package routes

import (
	"tembea/internal/controllers"
	"tembea/internal/middleware"
	"tembea/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", controllers.AdminDashboard)
		admin.GET("/stats", controllers.AdminStats)
		admin.GET("/all-owners", controllers.AllOwners)
		admin.GET("/pending-owners", controllers.PendingOwners)
		admin.POST("/approve-owner/:id", controllers.ApproveOwner)
		admin.POST("/reject-owner/:id", controllers.RejectOwner)

		// Categories management (public index lives in PublicRoutes)
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)
	}
}
