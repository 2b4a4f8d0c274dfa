package navigation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dseza/portal/internal/i18n"
)

type mapTranslator map[string]string

func (m mapTranslator) T(key string) string {
	if v, ok := m[key]; ok {
		return v
	}

	return key
}

// testItems returns A (mega menu) and B (plain link).
func testItems() []MenuItem {
	return []MenuItem{
		{
			Label: Label{Title: "Giới thiệu", TitleEn: "Introduction"},
			URL:   "/gioi-thieu",
			MegaMenu: &MegaMenu{Sections: []Section{{
				Label: Label{Title: "Tổng quan", TitleEn: "Overview"},
				Links: []Link{{Label: Label{Title: "Thư ngỏ"}, URL: "/thu-ngo"}},
			}}},
		},
		{
			Label: Label{Title: "Liên hệ", TitleEn: "Contact"},
			URL:   "/lien-he",
		},
		{
			Label: Label{Title: "nav.news", Translatable: true},
			URL:   "/tin-tuc",
			MegaMenu: &MegaMenu{Sections: []Section{{
				Label: Label{Title: "news.title", Translatable: true},
				Links: []Link{{Label: Label{Title: "news.categories.investment", Translatable: true}, URL: "/dau-tu"}},
			}}},
		},
	}
}

func TestResolver_ResolveTitle(t *testing.T) {
	translator := mapTranslator{"nav.news": "Tin tức"}

	tests := []struct {
		name  string
		lang  i18n.Language
		label Label
		want  string
	}{
		{
			name:  "translatable wins over english literal",
			lang:  i18n.English,
			label: Label{Title: "nav.news", TitleEn: "Foo", Translatable: true},
			want:  "Tin tức",
		},
		{
			name:  "translatable in vietnamese",
			lang:  i18n.Vietnamese,
			label: Label{Title: "nav.news", Translatable: true},
			want:  "Tin tức",
		},
		{
			name:  "english literal override",
			lang:  i18n.English,
			label: Label{Title: "Liên hệ", TitleEn: "Foo"},
			want:  "Foo",
		},
		{
			name:  "english without override falls through",
			lang:  i18n.English,
			label: Label{Title: "Liên hệ"},
			want:  "Liên hệ",
		},
		{
			name:  "vietnamese literal",
			lang:  i18n.Vietnamese,
			label: Label{Title: "Liên hệ", TitleEn: "Foo"},
			want:  "Liên hệ",
		},
		{
			name:  "missing translation key renders raw",
			lang:  i18n.Vietnamese,
			label: Label{Title: "nav.unknown", Translatable: true},
			want:  "nav.unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.lang, translator)
			assert.Equal(t, tt.want, r.ResolveTitle(tt.label))
		})
	}
}

func TestResolver_NilTranslator(t *testing.T) {
	r := NewResolver(i18n.English, nil)
	assert.Equal(t, "nav.news", r.ResolveTitle(Label{Title: "nav.news", Translatable: true}))
}

type emptyTranslator struct{}

func (emptyTranslator) T(string) string { return "" }

func TestResolver_EmptyTranslation(t *testing.T) {
	r := NewResolver(i18n.English, emptyTranslator{})
	assert.Equal(t, "nav.news", r.ResolveTitle(Label{Title: "nav.news", Translatable: true}))
}

func TestBar_Click(t *testing.T) {
	bar := NewBar(testItems())

	_, expanded := bar.State()
	assert.False(t, expanded, "bar starts collapsed")

	// click A expands A
	click, err := bar.Click(0)
	require.NoError(t, err)
	assert.False(t, click.Navigate)

	index, expanded := bar.State()
	assert.True(t, expanded)
	assert.Equal(t, 0, index)

	// click A again collapses
	_, err = bar.Click(0)
	require.NoError(t, err)

	_, expanded = bar.State()
	assert.False(t, expanded)

	// click B navigates without state change
	click, err = bar.Click(1)
	require.NoError(t, err)
	assert.True(t, click.Navigate)
	assert.Equal(t, "/lien-he", click.URL)

	_, expanded = bar.State()
	assert.False(t, expanded)
}

func TestBar_Click_PlainItemKeepsExpandedPanel(t *testing.T) {
	bar := NewBar(testItems())

	_, err := bar.Click(2)
	require.NoError(t, err)

	click, err := bar.Click(1)
	require.NoError(t, err)
	assert.True(t, click.Navigate)

	index, expanded := bar.State()
	assert.True(t, expanded)
	assert.Equal(t, 2, index)
}

func TestBar_Click_Exclusive(t *testing.T) {
	bar := NewBar(testItems())

	_, _ = bar.Click(0)
	_, _ = bar.Click(2)

	index, expanded := bar.State()
	assert.True(t, expanded)
	assert.Equal(t, 2, index)
	assert.Same(t, testItemsPanel(bar, 2), bar.ActivePanel())
}

func testItemsPanel(bar *Bar, index int) *MegaMenu {
	return bar.Items()[index].MegaMenu
}

func TestBar_Click_UnknownIndex(t *testing.T) {
	bar := NewBar(testItems())

	for _, index := range []int{-1, 3, 100} {
		_, err := bar.Click(index)
		require.ErrorIs(t, err, ErrUnknownMenuItem)
	}

	_, expanded := bar.State()
	assert.False(t, expanded)
}

func TestBar_Expand(t *testing.T) {
	bar := NewBar(testItems())

	// plain and out of range items are ignored
	bar.Expand(1)
	bar.Expand(7)

	_, expanded := bar.State()
	assert.False(t, expanded)

	bar.Expand(0)

	index, expanded := bar.State()
	assert.True(t, expanded)
	assert.Equal(t, 0, index)

	bar.Collapse()
	assert.Nil(t, bar.ActivePanel())
}

func TestBar_Render(t *testing.T) {
	bar := NewBar(testItems())
	resolver := NewResolver(i18n.English, mapTranslator{
		"nav.news":                   "News",
		"news.title":                 "News",
		"news.categories.investment": "Investment",
	})

	rendered := bar.Render(resolver)
	require.Len(t, rendered.Items, 3)
	assert.Nil(t, rendered.Panel)
	assert.Equal(t, "Introduction", rendered.Items[0].Title)
	assert.True(t, rendered.Items[0].HasMegaMenu)
	assert.False(t, rendered.Items[1].HasMegaMenu)

	_, err := bar.Click(2)
	require.NoError(t, err)

	rendered = bar.Render(resolver)
	require.NotNil(t, rendered.Panel)
	assert.Equal(t, 2, rendered.Panel.Index)
	assert.Equal(t, "News", rendered.Panel.Title)
	assert.True(t, rendered.Items[2].Active)
	assert.False(t, rendered.Items[0].Active)
	require.Len(t, rendered.Panel.Sections, 1)
	assert.Equal(t, "News", rendered.Panel.Sections[0].Title)
	assert.Equal(t, []RenderedLink{{Title: "Investment", URL: "/dau-tu"}}, rendered.Panel.Sections[0].Links)

	// exactly one active item
	active := 0
	for _, item := range rendered.Items {
		if item.Active {
			active++
		}
	}

	assert.Equal(t, 1, active)
}

func TestLoadDefault(t *testing.T) {
	items, err := LoadDefault()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	var mega, plain int

	for _, item := range items {
		if item.HasMegaMenu() {
			mega++
		} else {
			plain++
		}
	}

	assert.Positive(t, mega)
	assert.Positive(t, plain)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid",
			content: "items:\n  - title: Liên hệ\n    url: /lien-he\n",
		},
		{
			name:    "no items",
			content: "items: []\n",
			wantErr: true,
		},
		{
			name:    "missing url",
			content: "items:\n  - title: Liên hệ\n",
			wantErr: true,
		},
		{
			name:    "mega menu without sections",
			content: "items:\n  - title: A\n    url: /a\n    megaMenu:\n      sections: []\n",
			wantErr: true,
		},
		{
			name:    "broken yaml",
			content: "items: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - title: A\n    url: /a\n"), 0o600))

	items, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/a", items[0].URL)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
