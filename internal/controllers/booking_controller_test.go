package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingDateAcceptsFutureDate(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	date, err := parseBookingDate(tomorrow)
	require.NoError(t, err)
	assert.Equal(t, tomorrow, date.Format("2006-01-02"))
}

func TestParseBookingDateRejectsTodayAndPast(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := parseBookingDate(today)
	assert.EqualError(t, err, "The date must be after today.")

	_, err = parseBookingDate(yesterday)
	assert.EqualError(t, err, "The date must be after today.")
}

func TestParseBookingDateAcceptsRFC3339(t *testing.T) {
	next := time.Now().UTC().AddDate(0, 1, 0)

	date, err := parseBookingDate(next.Format(time.RFC3339))
	require.NoError(t, err)
	assert.Equal(t, next.Year(), date.Year())
}

func TestParseBookingDateRejectsGarbage(t *testing.T) {
	_, err := parseBookingDate("next tuesday")
	assert.EqualError(t, err, "The date must be a valid date.")
}

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, parsePage(testContext(t, "/public/activities")))
	assert.Equal(t, 3, parsePage(testContext(t, "/public/activities?page=3")))
	assert.Equal(t, 1, parsePage(testContext(t, "/public/activities?page=0")))
	assert.Equal(t, 1, parsePage(testContext(t, "/public/activities?page=-2")))
	assert.Equal(t, 1, parsePage(testContext(t, "/public/activities?page=abc")))
}
