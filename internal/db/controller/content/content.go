// Package content reads and writes the news and resource tables.
package content

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dseza/portal/internal/content"
	"github.com/dseza/portal/internal/db/models"
)

const orderByPosition = "position ASC, id ASC"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrCategoryEmpty is returned when a news item has no category.
	ErrCategoryEmpty = errors.New("news category cannot be empty")
	// ErrMediaTypeEmpty is returned when a resource item has no media type.
	ErrMediaTypeEmpty = errors.New("resource media type cannot be empty")
)

// News returns all news items in display order.
func News(db *gorm.DB) ([]content.NewsItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.NewsItem
	if err := db.Order(orderByPosition).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]content.NewsItem, 0, len(rows))
	for i := range rows {
		out = append(out, newsFromModel(&rows[i]))
	}

	return out, nil
}

// Resources returns all resource items in display order.
func Resources(db *gorm.DB) ([]content.ResourceItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.ResourceItem
	if err := db.Order(orderByPosition).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]content.ResourceItem, 0, len(rows))
	for i := range rows {
		out = append(out, resourceFromModel(&rows[i]))
	}

	return out, nil
}

// Library loads the complete content library.
func Library(db *gorm.DB) (*content.Library, error) {
	news, err := News(db)
	if err != nil {
		return nil, err
	}

	resources, err := Resources(db)
	if err != nil {
		return nil, err
	}

	return &content.Library{News: news, Resources: resources}, nil
}

// CreateNews stores a news item. Position is assigned by the caller.
func CreateNews(db *gorm.DB, item *models.NewsItem) error {
	if db == nil {
		return ErrDBNil
	}

	if item.Category == "" {
		return ErrCategoryEmpty
	}

	return db.Create(item).Error
}

// CreateResource stores a resource item.
func CreateResource(db *gorm.DB, item *models.ResourceItem) error {
	if db == nil {
		return ErrDBNil
	}

	if item.MediaType == "" {
		return ErrMediaTypeEmpty
	}

	return db.Create(item).Error
}

// Counts returns the number of stored news and resource items.
func Counts(db *gorm.DB) (news, resources int64, err error) {
	if db == nil {
		return 0, 0, ErrDBNil
	}

	if err = db.Model(&models.NewsItem{}).Count(&news).Error; err != nil {
		return 0, 0, err
	}

	if err = db.Model(&models.ResourceItem{}).Count(&resources).Error; err != nil {
		return 0, 0, err
	}

	return news, resources, nil
}

func newsFromModel(m *models.NewsItem) content.NewsItem {
	return content.NewsItem{
		ID:         m.ID,
		Category:   m.Category,
		Date:       m.Date,
		TitleKey:   m.TitleKey,
		ExcerptKey: m.ExcerptKey,
		Image:      m.Image,
	}
}

func resourceFromModel(m *models.ResourceItem) content.ResourceItem {
	return content.ResourceItem{
		ID:        m.ID,
		MediaType: content.MediaType(m.MediaType),
		Title:     m.Title,
		Date:      m.Date,
		ImageURL:  m.ImageURL,
	}
}
