package navigation

import (
	"github.com/dseza/portal/internal/selection"
)

// Click is the outcome of a click on a menu item.
type Click struct {
	// Navigate is true when the browser should follow URL.
	Navigate bool
	URL      string
}

// Bar is the top menu bar. At most one mega-menu panel is expanded.
type Bar struct {
	items     []MenuItem
	expansion *selection.Controller[int]
}

// NewBar returns a collapsed bar over items.
func NewBar(items []MenuItem) *Bar {
	return &Bar{
		items:     items,
		expansion: selection.NewToggleable[int](),
	}
}

// Items returns the menu items.
func (b *Bar) Items() []MenuItem {
	return b.items
}

// Click applies a click on the item at index.
//
// Plain items leave the state untouched and ask for navigation to their URL.
// Items with a mega menu toggle their panel and suppress navigation.
func (b *Bar) Click(index int) (Click, error) {
	if index < 0 || index >= len(b.items) {
		return Click{}, ErrUnknownMenuItem
	}

	item := b.items[index]
	if !item.HasMegaMenu() {
		return Click{Navigate: true, URL: item.URL}, nil
	}

	b.expansion.Select(index)

	return Click{}, nil
}

// State returns the expanded item index, or false when collapsed.
func (b *Bar) State() (int, bool) {
	return b.expansion.Active()
}

// Expand restores a previously expanded item. Indexes that do not point at an
// expandable item are ignored, so stale session state collapses the bar.
func (b *Bar) Expand(index int) {
	if index < 0 || index >= len(b.items) || !b.items[index].HasMegaMenu() {
		return
	}

	b.expansion.Restore(index)
}

// Collapse closes any open panel.
func (b *Bar) Collapse() {
	b.expansion.Reset()
}

// ActivePanel returns the mega menu of the expanded item, or nil.
func (b *Bar) ActivePanel() *MegaMenu {
	index, ok := b.expansion.Active()
	if !ok || index < 0 || index >= len(b.items) {
		return nil
	}

	return b.items[index].MegaMenu
}

// RenderedItem is a menu item ready for the template.
type RenderedItem struct {
	Index       int
	Title       string
	URL         string
	HasMegaMenu bool
	Active      bool
}

// RenderedLink is a resolved mega-menu link.
type RenderedLink struct {
	Title string
	URL   string
}

// RenderedSection is a resolved mega-menu section.
type RenderedSection struct {
	Title string
	Links []RenderedLink
}

// RenderedPanel is the expanded mega-menu panel.
type RenderedPanel struct {
	Index    int
	Title    string
	Sections []RenderedSection
}

// Rendered is the bar as the template sees it.
type Rendered struct {
	Items []RenderedItem
	Panel *RenderedPanel
}

// Render resolves every label of the bar with resolver.
func (b *Bar) Render(resolver Resolver) Rendered {
	out := Rendered{
		Items: make([]RenderedItem, 0, len(b.items)),
	}

	for i, item := range b.items {
		out.Items = append(out.Items, RenderedItem{
			Index:       i,
			Title:       resolver.ResolveTitle(item.Label),
			URL:         item.URL,
			HasMegaMenu: item.HasMegaMenu(),
			Active:      b.expansion.IsActive(i),
		})
	}

	panel := b.ActivePanel()
	if panel == nil {
		return out
	}

	index, _ := b.expansion.Active()
	rendered := &RenderedPanel{
		Index:    index,
		Title:    out.Items[index].Title,
		Sections: make([]RenderedSection, 0, len(panel.Sections)),
	}

	for _, section := range panel.Sections {
		rs := RenderedSection{
			Title: resolver.ResolveTitle(section.Label),
			Links: make([]RenderedLink, 0, len(section.Links)),
		}

		for _, link := range section.Links {
			rs.Links = append(rs.Links, RenderedLink{
				Title: resolver.ResolveTitle(link.Label),
				URL:   link.URL,
			})
		}

		rendered.Sections = append(rendered.Sections, rs)
	}

	out.Panel = rendered

	return out
}
