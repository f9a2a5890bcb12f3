package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillImageURLsKeepsOrder(t *testing.T) {
	a := Activity{
		Images: []ActivityImage{
			{Path: "activities/first.jpg", Position: 0},
			{Path: "activities/second.png", Position: 1},
		},
	}
	a.FillImageURLs()

	assert.Equal(t, []string{
		"/storage/activities/first.jpg",
		"/storage/activities/second.png",
	}, a.ImageURLs)
}

func TestFillImageURLsEmpty(t *testing.T) {
	a := Activity{}
	a.FillImageURLs()
	assert.NotNil(t, a.ImageURLs)
	assert.Empty(t, a.ImageURLs)
}
