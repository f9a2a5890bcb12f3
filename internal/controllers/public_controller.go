package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tembea/internal/config"
	"tembea/internal/models"
)

// publicPageSize is the fixed page size of the public activity listing.
const publicPageSize = 12

// approvedOwnerScope keeps only activities whose owner passed admin review.
func approvedOwnerScope(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN users ON users.id = activities.user_id").
		Where("users.status = ?", models.OwnerApproved)
}

// PublicActivities lists approved owners' activities with optional category,
// location and price filters, paginated at a fixed size.
func PublicActivities(c *gin.Context) {
	query := approvedOwnerScope(config.DB.Model(&models.Activity{}))

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("activities.category_id = ?", categoryID)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("activities.location ILIKE ?", "%"+location+"%")
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("activities.price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("activities.price <= ?", v)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count activities"})
		return
	}

	page := parsePage(c)
	lastPage := int((total + publicPageSize - 1) / publicPageSize)
	if lastPage < 1 {
		lastPage = 1
	}

	var activities []models.Activity
	if err := query.
		Preload("Category").Preload("Owner").Preload("Images", imageOrder).
		Order("activities.created_at DESC").
		Limit(publicPageSize).
		Offset((page - 1) * publicPageSize).
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch activities"})
		return
	}
	models.FillImageURLs(activities)

	c.JSON(http.StatusOK, gin.H{
		"data": activities,
		"meta": gin.H{
			"current_page": page,
			"last_page":    lastPage,
			"per_page":     publicPageSize,
			"total":        total,
		},
	})
}

// ShowPublicActivity hides activities of unapproved owners behind a 404 so
// pending listings are indistinguishable from missing ones.
func ShowPublicActivity(c *gin.Context) {
	var activity models.Activity
	if err := config.DB.
		Preload("Category").Preload("Owner").Preload("Images", imageOrder).
		First(&activity, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if activity.Owner == nil || activity.Owner.Status != models.OwnerApproved {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	activity.FillImageURLs()
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// ListOwners returns approved owners with their activity counts.
func ListOwners(c *gin.Context) {
	var owners []models.User
	if err := config.DB.
		Where("role = ? AND status = ?", models.RoleOwner, models.OwnerApproved).
		Order("created_at DESC").
		Find(&owners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch owners"})
		return
	}

	counts, err := activityCountsByOwner()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ownerSummaries(owners, counts)})
}

// activityCountsByOwner groups activity counts per owner in one query.
func activityCountsByOwner() (map[uint]int64, error) {
	type row struct {
		UserID uint
		Count  int64
	}

	var rows []row
	if err := config.DB.Model(&models.Activity{}).
		Select("activities.user_id AS user_id, COUNT(*) AS count").
		Group("activities.user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Count
	}
	return counts, nil
}

// ownerSummaries shapes the public owner listing: contact fields plus the
// owner's activity count, never the account internals.
func ownerSummaries(owners []models.User, counts map[uint]int64) []gin.H {
	data := make([]gin.H, 0, len(owners))
	for i := range owners {
		data = append(data, gin.H{
			"id":               owners[i].ID,
			"name":             owners[i].Name,
			"email":            owners[i].Email,
			"phone":            owners[i].Phone,
			"created_at":       owners[i].CreatedAt,
			"activities_count": counts[owners[i].ID],
		})
	}
	return data
}

// OwnerActivities returns an approved owner's public profile and listings.
func OwnerActivities(c *gin.Context) {
	var owner models.User
	if err := config.DB.
		Where("id = ? AND role = ? AND status = ?", c.Param("id"), models.RoleOwner, models.OwnerApproved).
		First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
		return
	}

	var activities []models.Activity
	if err := config.DB.
		Where("user_id = ?", owner.ID).
		Preload("Category").Preload("Images", imageOrder).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch activities"})
		return
	}
	models.FillImageURLs(activities)

	c.JSON(http.StatusOK, gin.H{
		"owner": gin.H{
			"id":    owner.ID,
			"name":  owner.Name,
			"email": owner.Email,
			"phone": owner.Phone,
		},
		"activities": activities,
	})
}

// HomeData bundles everything the landing page renders: categories with
// counts, a random sample of featured activities and site-wide totals.
func HomeData(c *gin.Context) {
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

	var featured []models.Activity
	if err := approvedOwnerScope(config.DB.Model(&models.Activity{})).
		Preload("Category").Preload("Owner").Preload("Images", imageOrder).
		Order("RANDOM()").
		Limit(8).
		Find(&featured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch featured activities"})
		return
	}
	models.FillImageURLs(featured)

	var totalActivities int64
	approvedOwnerScope(config.DB.Model(&models.Activity{})).Count(&totalActivities)

	var totalOwners int64
	config.DB.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleOwner, models.OwnerApproved).
		Count(&totalOwners)

	var totalCategories int64
	config.DB.Model(&models.Category{}).Count(&totalCategories)

	c.JSON(http.StatusOK, gin.H{
		"categories":          categories,
		"featured_activities": featured,
		"stats": gin.H{
			"total_activities": totalActivities,
			"total_owners":     totalOwners,
			"total_categories": totalCategories,
		},
	})
}
