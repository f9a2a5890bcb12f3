package routes

import (
	"tembea/internal/controllers"
	"tembea/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", controllers.RegisterUser)
	r.POST("/login", controllers.LoginUser)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/logout", controllers.LogoutUser)
		authed.GET("/user", controllers.CurrentUser)
	}
}
