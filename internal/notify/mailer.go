// Package notify sends owner-facing booking mail. Delivery is best-effort:
// a failed send is logged and never fails the write that triggered it.
package notify

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"

	"tembea/internal/models"
)

// Sender delivers a single mail message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through the SMTP relay configured in the environment.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPSenderFromEnv builds a sender from SMTP_* env vars with local
// mailcatcher defaults.
func NewSMTPSenderFromEnv() *SMTPSender {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "1025"))
	if err != nil {
		port = 1025
	}
	return &SMTPSender{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "no-reply@tembea.local"),
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return d.DialAndSend(m)
}

// NewBooking notifies the activity's owner about a fresh booking. The total
// is recomputed from price and guests, the same derivation every other
// surface uses. Requires booking.Activity to be loaded.
func NewBooking(sender Sender, owner *models.User, booking *models.Booking) {
	if booking.Activity == nil {
		logrus.WithField("booking_id", booking.ID).Warn("booking notification skipped: activity not loaded")
		return
	}

	subject := "New Booking - " + booking.Activity.Title
	body := fmt.Sprintf(
		"You have a new booking for: %s\nDate: %s\nClient: %s\nGuests: %d\nTotal: DH%.2f\n\nThank you",
		booking.Activity.Title,
		booking.Date.Format("2006-01-02"),
		booking.ClientName,
		booking.Guests,
		booking.Total(),
	)

	if err := sender.Send(owner.Email, subject, body); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"owner_id":   owner.ID,
		}).Error("could not deliver booking notification")
	}
}

func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
