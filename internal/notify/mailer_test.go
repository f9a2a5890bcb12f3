package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tembea/internal/models"
)

type fakeSender struct {
	to      string
	subject string
	body    string
	calls   int
	err     error
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.body = body
	return f.err
}

func sampleBooking() (*models.User, *models.Booking) {
	owner := &models.User{Name: "Amina", Email: "amina@example.com", Role: models.RoleOwner}
	booking := &models.Booking{
		ClientName: "John Doe",
		Guests:     3,
		Date:       time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		Activity:   &models.Activity{Title: "Atlas Hike", Price: 250.00},
	}
	return owner, booking
}

func TestNewBookingMailContent(t *testing.T) {
	owner, booking := sampleBooking()
	sender := &fakeSender{}

	NewBooking(sender, owner, booking)

	require.Equal(t, 1, sender.calls)
	assert.Equal(t, "amina@example.com", sender.to)
	assert.Equal(t, "New Booking - Atlas Hike", sender.subject)
	assert.Contains(t, sender.body, "Atlas Hike")
	assert.Contains(t, sender.body, "2026-10-14")
	assert.Contains(t, sender.body, "John Doe")
	assert.Contains(t, sender.body, "Guests: 3")
	// Total must match the price x guests derivation used everywhere else
	assert.Contains(t, sender.body, "DH750.00")
}

func TestNewBookingSkipsWhenActivityMissing(t *testing.T) {
	owner, booking := sampleBooking()
	booking.Activity = nil
	sender := &fakeSender{}

	NewBooking(sender, owner, booking)

	assert.Zero(t, sender.calls)
}

func TestNewBookingSwallowsSendErrors(t *testing.T) {
	owner, booking := sampleBooking()
	sender := &fakeSender{err: errors.New("smtp down")}

	// Must not panic or propagate: delivery is best-effort
	NewBooking(sender, owner, booking)

	assert.Equal(t, 1, sender.calls)
}
