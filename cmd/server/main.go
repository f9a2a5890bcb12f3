package main

import (
	"log"
	"net/http"

	"tembea/internal/config"
	"tembea/internal/controllers"
	"tembea/internal/logger"
	"tembea/internal/middleware"
	"tembea/internal/notify"
	"tembea/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Booking mail goes through the SMTP relay from the environment
	controllers.Mailer = notify.NewSMTPSenderFromEnv()

	// Setup Gin router (recovery + request logging live inside)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
