// Package policy is the authorization gate: pure predicates over an actor and
// a target record. Admins may view anything; mutation is reserved for the
// record's owner. Booking ownership is transitive through its activity.
package policy

import (
	"errors"

	"tembea/internal/models"
)

// ErrForbidden marks a permission denial. Controllers map it to 403 so it is
// never confused with a missing record.
var ErrForbidden = errors.New("operation is forbidden for user")

func CanViewActivity(user *models.User, activity *models.Activity) bool {
	return user.IsAdmin() || activity.UserID == user.ID
}

func CanUpdateActivity(user *models.User, activity *models.Activity) bool {
	return activity.UserID == user.ID
}

func CanDeleteActivity(user *models.User, activity *models.Activity) bool {
	return activity.UserID == user.ID
}

// Booking predicates require booking.Activity to be loaded.

func CanViewBooking(user *models.User, booking *models.Booking) bool {
	return user.IsAdmin() || ownsBookingActivity(user, booking)
}

func CanUpdateBooking(user *models.User, booking *models.Booking) bool {
	return ownsBookingActivity(user, booking)
}

func CanDeleteBooking(user *models.User, booking *models.Booking) bool {
	return ownsBookingActivity(user, booking)
}

func ownsBookingActivity(user *models.User, booking *models.Booking) bool {
	return booking.Activity != nil && booking.Activity.UserID == user.ID
}
