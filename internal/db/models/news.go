// Package models contains database model definitions.
package models

import "time"

// NewsItem is a stored news teaser. Title and Excerpt hold translation keys.
type NewsItem struct {
	ID         uint64 `gorm:"primaryKey"`
	Position   int    `gorm:"index"`
	Category   string `gorm:"size:64;index"`
	Date       time.Time
	TitleKey   string `gorm:"size:255"`
	ExcerptKey string `gorm:"size:255"`
	Image      string `gorm:"size:1024"`
}

// TableName overrides the gorm default.
func (NewsItem) TableName() string {
	return "news_items"
}
