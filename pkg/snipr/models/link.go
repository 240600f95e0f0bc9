package models

import "time"

// Link maps a short id to its original URL and tracks click metrics.
// ShortID is immutable after creation; Clicks only ever goes up.
type Link struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ShortID     string     `gorm:"uniqueIndex;not null" json:"shortId"`
	OriginalURL string     `gorm:"not null" json:"originalurl"`
	Clicks      uint       `gorm:"default:0" json:"clicks"`
	LastClick   *time.Time `json:"lastClick"`
	UserID      *uint      `gorm:"index" json:"userId,omitempty"`
}
