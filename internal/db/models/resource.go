package models

import "time"

// ResourceItem is a stored media resource.
type ResourceItem struct {
	ID        uint64 `gorm:"primaryKey"`
	Position  int    `gorm:"index"`
	MediaType string `gorm:"size:32;index"`
	Title     string `gorm:"size:512"`
	Date      time.Time
	ImageURL  string `gorm:"size:1024"`
}

// TableName overrides the gorm default.
func (ResourceItem) TableName() string {
	return "resource_items"
}

// All returns every model the portal migrates.
func All() []any {
	return []any{
		&NewsItem{},
		&ResourceItem{},
	}
}
