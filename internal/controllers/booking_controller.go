package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tembea/internal/config"
	"tembea/internal/middleware"
	"tembea/internal/models"
	"tembea/internal/notify"
	"tembea/internal/policy"
)

// Mailer delivers booking notifications. Wired in main, swapped in tests.
var Mailer notify.Sender

type createBookingInput struct {
	ActivityID  uint   `json:"activity_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required,max=255"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Guests      int    `json:"guests" binding:"required,min=1"`
}

// CreateBooking is the public reservation endpoint. The booking persists
// first; notifying the owner is best-effort and never fails the request.
func CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateBooking: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	date, err := parseBookingDate(input.Date)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"date": []string{err.Error()}}})
		return
	}

	var activity models.Activity
	if err := config.DB.Preload("Owner").First(&activity, input.ActivityID).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"activity_id": []string{"The selected activity does not exist."}}})
		return
	}

	booking := models.Booking{
		ActivityID:  input.ActivityID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Date:        date,
		Guests:      input.Guests,
		Status:      models.BookingPending,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create booking: " + err.Error()})
		return
	}

	booking.Activity = &activity
	if Mailer != nil && activity.Owner != nil {
		notify.NewBooking(Mailer, activity.Owner, &booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// ListBookings returns all bookings for admins, or the bookings against the
// caller's own activities for owners.
func ListBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Activity").Preload("Activity.Owner")
	switch user.Role {
	case models.RoleAdmin:
		// unrestricted
	case models.RoleOwner:
		query = query.
			Joins("JOIN activities ON activities.id = bookings.activity_id").
			Where("activities.user_id = ?", user.ID)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	var bookings []models.Booking
	if err := query.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// GetBooking returns one booking with its activity, gated by the view policy.
func GetBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Activity").First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if !policy.CanViewBooking(&user, &booking) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBookingStatus moves a booking along its lifecycle. Targets outside
// the transition table are rejected as a domain error.
func UpdateBookingStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Activity").First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if !policy.CanUpdateBooking(&user, &booking) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := models.BookingStatus(body.Status)
	if !models.ValidBookingStatus(target) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"status": []string{"The status must be one of: pending, confirmed, cancelled, completed."}}})
		return
	}

	if err := booking.Transition(target); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot move booking from " + string(booking.Status) + " to " + string(target)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&booking).Update("status", booking.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update booking: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

// DeleteBooking hard-deletes a booking.
func DeleteBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Activity").First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if !policy.CanDeleteBooking(&user, &booking) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrForbidden.Error()})
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// parseBookingDate accepts a plain date or RFC3339 timestamp and requires it
// to land strictly after today.
func parseBookingDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, errors.New("The date must be a valid date.")
		}
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !date.After(today) {
		return time.Time{}, errors.New("The date must be after today.")
	}
	return date, nil
}
