package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tembea/internal/config"
	"tembea/internal/middleware"
	"tembea/internal/models"
	"tembea/internal/stats"
)

// ownerBookingsScope narrows bookings to those made against the owner's
// activities.
func ownerBookingsScope(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.
		Joins("JOIN activities ON activities.id = bookings.activity_id").
		Where("activities.user_id = ?", ownerID)
}

// OwnerDashboard aggregates the authenticated owner's listings and bookings.
func OwnerDashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var totalActivities int64
	config.DB.Model(&models.Activity{}).Where("user_id = ?", user.ID).Count(&totalActivities)

	var totalBookings, pendingBookings int64
	ownerBookingsScope(config.DB.Model(&models.Booking{}), user.ID).Count(&totalBookings)
	ownerBookingsScope(config.DB.Model(&models.Booking{}), user.ID).
		Where("bookings.status = ?", models.BookingPending).
		Count(&pendingBookings)

	var ownerBookings []models.Booking
	if err := ownerBookingsScope(config.DB.Model(&models.Booking{}), user.ID).
		Preload("Activity").
		Order("bookings.created_at DESC").
		Find(&ownerBookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}

	monthly := stats.MonthlyBookings(ownerBookings)

	recentBookings := ownerBookings
	if len(recentBookings) > 5 {
		recentBookings = recentBookings[:5]
	}

	var activities []models.Activity
	if err := config.DB.
		Where("user_id = ?", user.ID).
		Preload("Category").Preload("Images", imageOrder).
		Order("created_at DESC").
		Limit(5).
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch activities"})
		return
	}
	models.FillImageURLs(activities)
	for i := range activities {
		var count int64
		config.DB.Model(&models.Booking{}).Where("activity_id = ?", activities[i].ID).Count(&count)
		activities[i].BookingsCount = count
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_activities": totalActivities,
			"total_bookings":   totalBookings,
			"pending_bookings": pendingBookings,
			"revenue":          stats.Revenue(ownerBookings),
			"booking_growth":   stats.BookingGrowth(monthly),
		},
		"recent_bookings":   recentBookings,
		"recent_activities": activities,
	})
}
