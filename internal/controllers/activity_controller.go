package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tembea/internal/config"
	"tembea/internal/middleware"
	"tembea/internal/models"
	"tembea/internal/policy"
	"tembea/internal/storage"
)

type activityForm struct {
	CategoryID  uint   `form:"category_id" binding:"required"`
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description" binding:"required"`
	// Pointer so an absent price is rejected while a free (0) listing stays valid
	Price    *float64 `form:"price" binding:"required,gte=0"`
	Duration string   `form:"duration"`
	Location string   `form:"location"`
}

// ListActivities returns the caller's activities; admins see everything.
func ListActivities(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Category").Preload("Owner").Preload("Images", imageOrder)
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}

	var activities []models.Activity
	if err := query.Order("created_at DESC").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch activities"})
		return
	}
	models.FillImageURLs(activities)

	c.JSON(http.StatusOK, gin.H{"data": activities})
}

// CreateActivity stores a new listing with its uploaded images.
func CreateActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var input activityForm
	if err := c.ShouldBind(&input); err != nil {
		logrus.WithError(err).Warn("CreateActivity: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"category_id": []string{"The selected category does not exist."}}})
		return
	}

	uploads := imageUploads(c)
	for _, fh := range uploads {
		if err := storage.ValidateImage(fh); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"images": []string{err.Error()}}})
			return
		}
	}

	activity := models.Activity{
		UserID:      user.ID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Duration:    input.Duration,
		Location:    input.Location,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}

	if err := tx.Create(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create activity: " + err.Error()})
		return
	}

	paths, err := storeImages(tx, activity.ID, uploads)
	if err != nil {
		tx.Rollback()
		cleanupImages(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store images: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		cleanupImages(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	reloadActivity(&activity)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Activity created successfully",
		"activity": activity,
	})
}

// GetActivity returns one activity with its relations, gated by the view
// policy.
func GetActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var activity models.Activity
	if err := config.DB.
		Preload("Category").Preload("Owner").Preload("Bookings").Preload("Images", imageOrder).
		First(&activity, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if !policy.CanViewActivity(&user, &activity) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	activity.FillImageURLs()
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// UpdateActivity modifies a listing. New uploads replace the whole image
// list; without uploads the prior list is kept untouched.
func UpdateActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var activity models.Activity
	if err := config.DB.Preload("Images", imageOrder).First(&activity, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if !policy.CanUpdateActivity(&user, &activity) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	var input activityForm
	if err := c.ShouldBind(&input); err != nil {
		logrus.WithError(err).Warn("UpdateActivity: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"category_id": []string{"The selected category does not exist."}}})
		return
	}

	uploads := imageUploads(c)
	for _, fh := range uploads {
		if err := storage.ValidateImage(fh); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"images": []string{err.Error()}}})
			return
		}
	}

	activity.CategoryID = input.CategoryID
	activity.Title = input.Title
	activity.Description = input.Description
	activity.Price = *input.Price
	activity.Duration = input.Duration
	activity.Location = input.Location

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}

	// Detach the loaded image rows so Save does not resurrect them
	oldImages := activity.Images
	activity.Images = nil
	var newPaths []string
	if len(uploads) > 0 {
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.ActivityImage{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not replace images: " + err.Error()})
			return
		}

		var err error
		newPaths, err = storeImages(tx, activity.ID, uploads)
		if err != nil {
			tx.Rollback()
			cleanupImages(newPaths)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store images: " + err.Error()})
			return
		}
	}

	if err := tx.Save(&activity).Error; err != nil {
		tx.Rollback()
		cleanupImages(newPaths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update activity: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		cleanupImages(newPaths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	// Old files go only after the new list is committed
	if len(uploads) > 0 {
		for _, img := range oldImages {
			storage.DeleteImage(img.Path)
		}
	}

	reloadActivity(&activity)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Activity updated successfully",
		"activity": activity,
	})
}

// DeleteActivity removes a listing, its bookings and its stored images.
func DeleteActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var activity models.Activity
	if err := config.DB.Preload("Images").First(&activity, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if !policy.CanDeleteActivity(&user, &activity) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}
	if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.Booking{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete bookings: " + err.Error()})
		return
	}
	if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.ActivityImage{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete images: " + err.Error()})
		return
	}
	if err := tx.Delete(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete activity: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	for _, img := range activity.Images {
		storage.DeleteImage(img.Path)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// imageUploads collects the multipart image files, accepting both the
// images[] and images field names.
func imageUploads(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	if files, ok := form.File["images[]"]; ok {
		return files
	}
	return form.File["images"]
}

func storeImages(tx *gorm.DB, activityID uint, uploads []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for i, fh := range uploads {
		path, err := storage.SaveImage(fh)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)

		image := models.ActivityImage{
			ActivityID: activityID,
			Path:       path,
			Position:   i,
		}
		if err := tx.Create(&image).Error; err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// cleanupImages removes files written before a rolled-back transaction.
func cleanupImages(paths []string) {
	for _, path := range paths {
		storage.DeleteImage(path)
	}
}

func reloadActivity(activity *models.Activity) {
	if err := config.DB.
		Preload("Category").Preload("Images", imageOrder).
		First(activity, activity.ID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Warn("could not reload activity for response")
	}
	activity.FillImageURLs()
}

func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// parsePage reads a 1-based page query parameter.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
