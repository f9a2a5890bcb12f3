package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tembea/internal/models"
)

func bookingAt(t time.Time, status models.BookingStatus, price float64, guests int) models.Booking {
	return models.Booking{
		Model:    gorm.Model{CreatedAt: t},
		Status:   status,
		Guests:   guests,
		Activity: &models.Activity{Price: price},
	}
}

func TestRevenueCountsOnlyCompletedBookings(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		bookingAt(now, models.BookingCompleted, 250.00, 3),
		bookingAt(now, models.BookingCompleted, 100.00, 2),
		bookingAt(now, models.BookingPending, 999.00, 5),
		bookingAt(now, models.BookingCancelled, 999.00, 5),
	}

	assert.Equal(t, 950.00, Revenue(bookings))
}

func TestRevenueEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Revenue(nil))
}

func TestMonthlyBookingsGroupsAndSorts(t *testing.T) {
	bookings := []models.Booking{
		bookingAt(time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC), models.BookingPending, 10, 2),
		bookingAt(time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), models.BookingPending, 10, 4),
		bookingAt(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), models.BookingPending, 10, 1),
		bookingAt(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), models.BookingPending, 10, 3),
	}

	buckets := MonthlyBookings(bookings)

	assert.Len(t, buckets, 3)
	assert.Equal(t, MonthlyBucket{Year: 2025, Month: 8, Count: 2, TotalGuests: 6}, buckets[0])
	assert.Equal(t, MonthlyBucket{Year: 2025, Month: 7, Count: 1, TotalGuests: 1}, buckets[1])
	assert.Equal(t, MonthlyBucket{Year: 2024, Month: 12, Count: 1, TotalGuests: 3}, buckets[2])
}

func TestMonthlyBookingsCapsAtSixBuckets(t *testing.T) {
	var bookings []models.Booking
	for month := 1; month <= 9; month++ {
		bookings = append(bookings, bookingAt(
			time.Date(2025, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			models.BookingPending, 10, 1,
		))
	}

	buckets := MonthlyBookings(bookings)

	assert.Len(t, buckets, 6)
	assert.Equal(t, 9, buckets[0].Month)
	assert.Equal(t, 4, buckets[5].Month)
}

func TestBookingGrowth(t *testing.T) {
	tests := []struct {
		name    string
		buckets []MonthlyBucket
		want    int
	}{
		{"fewer than two months", []MonthlyBucket{{Count: 10}}, 0},
		{"no data", nil, 0},
		{"previous month zero", []MonthlyBucket{{Count: 10}, {Count: 0}}, 100},
		{"decline", []MonthlyBucket{{Count: 8}, {Count: 10}}, -20},
		{"increase", []MonthlyBucket{{Count: 15}, {Count: 10}}, 50},
		{"flat", []MonthlyBucket{{Count: 10}, {Count: 10}}, 0},
		{"rounding", []MonthlyBucket{{Count: 10}, {Count: 3}}, 233},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingGrowth(tt.buckets))
		})
	}
}
