// internal/models/booking.go
package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ErrInvalidTransition is returned when a status write is not permitted by
// the lifecycle: pending -> confirmed|cancelled, confirmed -> completed.
// Cancelled and completed are terminal.
var ErrInvalidTransition = errors.New("invalid booking status transition")

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted},
}

// ValidBookingStatus reports whether s is one of the four known states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking in state from may move to state to.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	gorm.Model
	ActivityID  uint          `json:"activity_id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ClientPhone string        `json:"client_phone"`
	Date        time.Time     `json:"date"`
	Guests      int           `json:"guests"`
	Status      BookingStatus `json:"status" gorm:"default:pending"`

	Activity *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

// Transition moves the booking to the requested status, enforcing the
// lifecycle table.
func (b *Booking) Transition(to BookingStatus) error {
	if !ValidBookingStatus(to) {
		return ErrInvalidTransition
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidTransition
	}
	b.Status = to
	return nil
}

// Total is the booking's effective price: activity price times guest count.
// It is derived here and never stored, so every surface reports the same
// figure. Requires the Activity to be loaded.
func (b *Booking) Total() float64 {
	if b.Activity == nil {
		return 0
	}
	return b.Activity.Price * float64(b.Guests)
}
