package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null" binding:"required"`

	Activities []Activity `gorm:"foreignKey:CategoryID" json:"activities,omitempty"`

	// Populated by controllers that count activities per category.
	ActivitiesCount int64 `json:"activities_count" gorm:"-"`
}
