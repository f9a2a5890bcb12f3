package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"tembea/internal/storage"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging must come before any route registration
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	PublicRoutes(r)
	ActivityRoutes(r)
	BookingRoutes(r)
	OwnerRoutes(r)
	AdminRoutes(r)

	// Uploaded images are served straight from the public namespace
	r.Static("/storage", storage.Root)

	return r
}
