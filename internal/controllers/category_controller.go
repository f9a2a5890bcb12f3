package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"tembea/internal/config"
	"tembea/internal/models"
)

// ListCategories is public and carries per-category activity counts.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}

	counts, err := activityCountsByCategory(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count activities"})
		return
	}
	for i := range categories {
		categories[i].ActivitiesCount = counts[categories[i].ID]
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,max=255"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: input.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"name": []string{"The name has already been taken."}}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create category: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required,max=255"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category.Name = input.Name
	if err := config.DB.Save(&category).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"name": []string{"The name has already been taken."}}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory refuses to orphan activities: a referenced category stays.
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.Activity{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count activities"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot delete category with associated activities"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// activityCountsByCategory groups activity counts per category, optionally
// restricted to activities whose owner has been approved.
func activityCountsByCategory(approvedOwnersOnly bool) (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}

	query := config.DB.Model(&models.Activity{}).
		Select("activities.category_id AS category_id, COUNT(*) AS count").
		Group("activities.category_id")
	if approvedOwnersOnly {
		query = query.
			Joins("JOIN users ON users.id = activities.user_id").
			Where("users.status = ?", models.OwnerApproved)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}
