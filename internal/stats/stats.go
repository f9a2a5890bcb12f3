// Package stats derives dashboard figures from already-fetched bookings.
// Everything here is a single pass over a slice, no persistence.
package stats

import (
	"math"
	"sort"

	"tembea/internal/models"
)

// MonthlyBucket is one (year, month) group of bookings.
type MonthlyBucket struct {
	Year        int   `json:"year"`
	Month       int   `json:"month"`
	Count       int64 `json:"count"`
	TotalGuests int64 `json:"total_guests"`
}

// Revenue sums price x guests over completed bookings. Bookings must carry
// their activity.
func Revenue(bookings []models.Booking) float64 {
	var total float64
	for i := range bookings {
		if bookings[i].Status == models.BookingCompleted {
			total += bookings[i].Total()
		}
	}
	return total
}

// MonthlyBookings groups bookings by creation month, newest first, capped at
// the last six buckets.
func MonthlyBookings(bookings []models.Booking) []MonthlyBucket {
	grouped := make(map[[2]int]*MonthlyBucket)
	for i := range bookings {
		key := [2]int{bookings[i].CreatedAt.Year(), int(bookings[i].CreatedAt.Month())}
		bucket, ok := grouped[key]
		if !ok {
			bucket = &MonthlyBucket{Year: key[0], Month: key[1]}
			grouped[key] = bucket
		}
		bucket.Count++
		bucket.TotalGuests += int64(bookings[i].Guests)
	}

	buckets := make([]MonthlyBucket, 0, len(grouped))
	for _, b := range grouped {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year > buckets[j].Year
		}
		return buckets[i].Month > buckets[j].Month
	})

	if len(buckets) > 6 {
		buckets = buckets[:6]
	}
	return buckets
}

// BookingGrowth is the month-over-month percentage change of booking counts,
// rounded. With fewer than two buckets there is nothing to compare (0); a
// previous month of zero reads as full growth (100).
func BookingGrowth(buckets []MonthlyBucket) int {
	if len(buckets) < 2 {
		return 0
	}
	current := buckets[0]
	previous := buckets[1]
	if previous.Count == 0 {
		return 100
	}
	return int(math.Round(float64(current.Count-previous.Count) / float64(previous.Count) * 100))
}
