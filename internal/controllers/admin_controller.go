package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tembea/internal/config"
	"tembea/internal/models"
	"tembea/internal/stats"
)

// PendingOwners lists owner accounts awaiting review.
func PendingOwners(c *gin.Context) {
	var owners []models.User
	if err := config.DB.
		Where("role = ? AND status = ?", models.RoleOwner, models.OwnerPending).
		Order("created_at DESC").
		Find(&owners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pending owners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": owners})
}

// AllOwners lists every owner account regardless of review state.
func AllOwners(c *gin.Context) {
	var owners []models.User
	if err := config.DB.
		Where("role = ?", models.RoleOwner).
		Order("created_at DESC").
		Find(&owners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch owners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": owners})
}

func ApproveOwner(c *gin.Context) {
	setOwnerStatus(c, models.OwnerApproved, "Owner approved successfully")
}

func RejectOwner(c *gin.Context) {
	setOwnerStatus(c, models.OwnerRejected, "Owner rejected successfully")
}

func setOwnerStatus(c *gin.Context, status models.OwnerStatus, message string) {
	var owner models.User
	if err := config.DB.
		Where("id = ? AND role = ?", c.Param("id"), models.RoleOwner).
		First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
		return
	}

	if err := config.DB.Model(&owner).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update owner status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// AdminDashboard aggregates platform-wide totals and recent records.
func AdminDashboard(c *gin.Context) {
	var totalOwners, pendingOwners, totalActivities, totalBookings int64
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&totalOwners)
	config.DB.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleOwner, models.OwnerPending).
		Count(&pendingOwners)
	config.DB.Model(&models.Activity{}).Count(&totalActivities)
	config.DB.Model(&models.Booking{}).Count(&totalBookings)

	// Revenue is derived from completed bookings and their activity prices
	var completed []models.Booking
	if err := config.DB.
		Where("status = ?", models.BookingCompleted).
		Preload("Activity").
		Find(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}

	var recentOwners []models.User
	config.DB.Model(&models.User{}).
		Where("role = ?", models.RoleOwner).
		Order("created_at DESC").
		Limit(5).
		Find(&recentOwners)

	var recentActivities []models.Activity
	config.DB.
		Preload("Owner").Preload("Category").Preload("Images", imageOrder).
		Order("created_at DESC").
		Limit(5).
		Find(&recentActivities)
	models.FillImageURLs(recentActivities)

	var recentBookings []models.Booking
	config.DB.
		Preload("Activity").Preload("Activity.Owner").
		Order("created_at DESC").
		Limit(5).
		Find(&recentBookings)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_owners":     totalOwners,
			"pending_owners":   pendingOwners,
			"total_activities": totalActivities,
			"total_bookings":   totalBookings,
			"total_revenue":    stats.Revenue(completed),
		},
		"recent_owners":     recentOwners,
		"recent_activities": recentActivities,
		"recent_bookings":   recentBookings,
	})
}

// AdminStats returns the monthly booking buckets, the growth figure derived
// from them, and the per-category activity distribution restricted to
// approved owners.
func AdminStats(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}
	monthly := stats.MonthlyBookings(bookings)

	var categories []models.Category
	if err := config.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}
	counts, err := activityCountsByCategory(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count activities"})
		return
	}
	for i := range categories {
		categories[i].ActivitiesCount = counts[categories[i].ID]
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly_bookings": monthly,
		"booking_growth":   stats.BookingGrowth(monthly),
		"category_stats":   categories,
	})
}
