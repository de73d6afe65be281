package models

import "time"

type Counselor struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Position int    `gorm:"not null;index" json:"position"`

	Name          string   `gorm:"size:100;not null" json:"name"`
	Image         string   `gorm:"size:255" json:"image"`
	Title         string   `gorm:"size:150" json:"title"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Experience    string   `gorm:"size:50" json:"experience"`
	Location      string   `gorm:"size:100" json:"location"`
	Bio           string   `gorm:"type:text" json:"bio"`
	Verified      bool     `json:"verified"`
	Achievements  []string `gorm:"type:text;serializer:json" json:"achievements"`
	NextAvailable string   `gorm:"size:50" json:"next_available"`

	Specialties    []string `gorm:"type:text;serializer:json" json:"specialties"`
	Countries      []string `gorm:"type:text;serializer:json" json:"countries"`
	Languages      []string `gorm:"type:text;serializer:json" json:"languages"`
	AvailableToday bool     `json:"available_today"`

	PriceVideo   int64 `gorm:"not null" json:"price_video"`
	PriceChat    int64 `gorm:"not null" json:"price_chat"`
	PricePackage int64 `gorm:"not null" json:"price_package"`

	Timezone         string   `gorm:"size:50;default:'WAT'" json:"timezone"`
	WorkStartHour    int      `gorm:"not null" json:"work_start_hour"`
	WorkEndHour      int      `gorm:"not null" json:"work_end_hour"`
	UnavailableDates []string `gorm:"type:text;serializer:json" json:"unavailable_dates"`
	BookedSlots      []string `gorm:"type:text;serializer:json" json:"booked_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
