package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNewsSection(t *testing.T) {
	s, err := NewNewsSection(NewsCategories, newsFixture())
	require.NoError(t, err)

	assert.Equal(t, "investment", s.Active(), "first category is the default")
	assert.Equal(t, NewsCategories, s.Categories())
	assert.Equal(t, []string{"investment", "training", "digital", "management", "other"}, []string(s.Keys()))

	_, err = NewNewsSection(nil, newsFixture())
	require.ErrorIs(t, err, ErrNoCategories)
}

func TestNewsSection_Layout(t *testing.T) {
	categories := []Category{
		{ID: "investment", NameKey: "news.categories.investment"},
		{ID: "training", NameKey: "news.categories.training"},
	}
	items := []NewsItem{
		{ID: 1, Category: "investment"},
		{ID: 2, Category: "investment"},
		{ID: 3, Category: "investment"},
	}

	s, err := NewNewsSection(categories, items)
	require.NoError(t, err)

	s.Select("investment")

	layout := s.Layout()
	require.NotNil(t, layout.Featured)
	assert.Equal(t, uint64(1), layout.Featured.ID)
	assert.Equal(t, []uint64{2, 3}, ids(layout.Secondary))

	s.Select("training")
	assert.True(t, s.IsActive("training"))

	layout = s.Layout()
	assert.Nil(t, layout.Featured)
	assert.NotNil(t, layout.Secondary)
	assert.Empty(t, layout.Secondary)
}

func TestLayoutNews(t *testing.T) {
	items := newsFixture()

	tests := []struct {
		name          string
		visible       []NewsItem
		wantFeatured  uint64
		wantSecondary []uint64
	}{
		{name: "empty", visible: nil, wantSecondary: []uint64{}},
		{name: "one", visible: items[:1], wantFeatured: 1, wantSecondary: []uint64{}},
		{name: "two", visible: items[:2], wantFeatured: 1, wantSecondary: []uint64{2}},
		{name: "more than three", visible: items, wantFeatured: 1, wantSecondary: []uint64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := LayoutNews(tt.visible)

			if tt.wantFeatured == 0 {
				assert.Nil(t, layout.Featured)
			} else {
				require.NotNil(t, layout.Featured)
				assert.Equal(t, tt.wantFeatured, layout.Featured.ID)
			}

			assert.Equal(t, tt.wantSecondary, ids(layout.Secondary))
		})
	}
}

func TestNewsSection_SelectIsSticky(t *testing.T) {
	s, err := NewNewsSection(NewsCategories, newsFixture())
	require.NoError(t, err)

	s.Select("digital")
	s.Select("digital")

	assert.Equal(t, "digital", s.Active())
	assert.Equal(t, []uint64{2}, ids(s.Visible()))
}
