package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tembea/internal/models"
)

func TestOwnerSummaries(t *testing.T) {
	owners := []models.User{
		{Model: gorm.Model{ID: 1}, Name: "Amina", Email: "amina@example.com", Phone: "0700000001", Role: models.RoleOwner, Status: models.OwnerApproved},
		{Model: gorm.Model{ID: 2}, Name: "Brian", Email: "brian@example.com", Phone: "0700000002", Role: models.RoleOwner, Status: models.OwnerApproved},
	}
	counts := map[uint]int64{1: 3}

	data := ownerSummaries(owners, counts)
	require.Len(t, data, 2)

	assert.Equal(t, int64(3), data[0]["activities_count"])
	assert.Equal(t, "Amina", data[0]["name"])
	// Owners with no activities still report a zero count
	assert.Equal(t, int64(0), data[1]["activities_count"])

	// Account internals stay out of the public payload
	_, hasStatus := data[0]["status"]
	_, hasRole := data[0]["role"]
	assert.False(t, hasStatus)
	assert.False(t, hasRole)
}

func TestOwnerSummariesEmpty(t *testing.T) {
	data := ownerSummaries(nil, nil)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}
