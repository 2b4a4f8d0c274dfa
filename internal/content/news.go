package content

import (
	"errors"

	"github.com/dseza/portal/internal/selection"
)

// SecondarySlots is how many articles are shown next to the featured one.
const SecondarySlots = 2

// ErrNoCategories is returned when a section is built without any category.
var ErrNoCategories = errors.New("section needs at least one category")

// Category is a news filter tab.
type Category struct {
	ID      string
	NameKey string
}

// NewsCategories are the news filter tabs in display order.
var NewsCategories = []Category{ //nolint:gochecknoglobals
	{ID: "investment", NameKey: "news.categories.investment"},
	{ID: "training", NameKey: "news.categories.training"},
	{ID: "digital", NameKey: "news.categories.digital"},
	{ID: "management", NameKey: "news.categories.management"},
	{ID: "other", NameKey: "news.categories.other"},
}

// NewsLayout places the visible articles: the first one featured, the next
// two in the secondary column. Missing slots stay empty.
type NewsLayout struct {
	Featured  *NewsItem
	Secondary []NewsItem
}

// LayoutNews splits visible into featured and secondary slots.
func LayoutNews(visible []NewsItem) NewsLayout {
	layout := NewsLayout{Secondary: make([]NewsItem, 0, SecondarySlots)}

	if len(visible) == 0 {
		return layout
	}

	featured := visible[0]
	layout.Featured = &featured

	end := min(len(visible), 1+SecondarySlots)
	layout.Secondary = append(layout.Secondary, visible[1:end]...)

	return layout
}

// NewsSection is the news block with its category filter.
type NewsSection struct {
	categories []Category
	items      []NewsItem
	active     *selection.Controller[string]
}

// NewNewsSection returns a section showing the first category.
func NewNewsSection(categories []Category, items []NewsItem) (*NewsSection, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	return &NewsSection{
		categories: categories,
		items:      items,
		active:     selection.NewSticky(categories[0].ID),
	}, nil
}

// Categories returns the filter tabs.
func (s *NewsSection) Categories() []Category {
	return s.categories
}

// Keys returns the category IDs in display order.
func (s *NewsSection) Keys() selection.Keys[string] {
	return CategoryKeys(s.categories)
}

// CategoryKeys returns the IDs of categories in order.
func CategoryKeys(categories []Category) selection.Keys[string] {
	keys := make(selection.Keys[string], 0, len(categories))
	for _, c := range categories {
		keys = append(keys, c.ID)
	}

	return keys
}

// Select activates a category.
func (s *NewsSection) Select(id string) {
	s.active.Select(id)
}

// Active returns the active category ID.
func (s *NewsSection) Active() string {
	id, _ := s.active.Active()
	return id
}

// IsActive reports whether id is the active category.
func (s *NewsSection) IsActive(id string) bool {
	return s.active.IsActive(id)
}

// Visible returns the articles of the active category.
func (s *NewsSection) Visible() []NewsItem {
	return VisibleItems(s.items, s.Active())
}

// Layout returns the slot layout of the active category.
func (s *NewsSection) Layout() NewsLayout {
	return LayoutNews(s.Visible())
}
