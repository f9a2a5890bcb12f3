// internal/models/activity.go
package models

import "gorm.io/gorm"

// Activity is a bookable experience listed by one owner under one category.
type Activity struct {
	gorm.Model
	UserID      uint    `json:"user_id"`
	CategoryID  uint    `json:"category_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`

	Owner    *User           `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Category *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []ActivityImage `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE;" json:"-"`
	Bookings []Booking       `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE;" json:"bookings,omitempty"`

	// Populated by controllers that count bookings per activity.
	BookingsCount int64 `json:"bookings_count,omitempty" gorm:"-"`

	// Derived from Images after load, served from the public storage namespace.
	ImageURLs []string `json:"image_urls" gorm:"-"`
}

// ActivityImage is one stored image of an activity. Images are kept as child
// rows ordered by Position; the public contract is the ordered URL list.
type ActivityImage struct {
	gorm.Model
	ActivityID uint   `json:"activity_id"`
	Path       string `json:"path"`
	Position   int    `json:"position"`
}

// FillImageURLs derives the ordered URL list from the preloaded image rows.
func (a *Activity) FillImageURLs() {
	urls := make([]string, 0, len(a.Images))
	for _, img := range a.Images {
		urls = append(urls, "/storage/"+img.Path)
	}
	a.ImageURLs = urls
}

// FillImageURLs derives URL lists for a whole result set.
func FillImageURLs(activities []Activity) {
	for i := range activities {
		activities[i].FillImageURLs()
	}
}
