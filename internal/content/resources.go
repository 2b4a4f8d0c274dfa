package content

import (
	"github.com/dseza/portal/internal/selection"
)

// Tab is a resources section tab.
type Tab struct {
	ID       MediaType
	LabelKey string
	Icon     string
}

// ResourceTabs are the resources tabs in display order.
var ResourceTabs = []Tab{ //nolint:gochecknoglobals
	{ID: MediaImages, LabelKey: "resourcesSection.tabImages", Icon: "image"},
	{ID: MediaVideos, LabelKey: "resourcesSection.tabVideos", Icon: "video"},
	{ID: MediaDocuments, LabelKey: "resourcesSection.tabDocuments", Icon: "file"},
}

// Display mode kinds.
const (
	KindImages      = "images"
	KindPlaceholder = "placeholder"
)

// ComingSoonTitleKey is the heading of every placeholder mode.
const ComingSoonTitleKey = "resourcesSection.comingSoonTitle"

// DisplayMode is what the resources content area shows. It is either
// ImagesMode or PlaceholderMode.
type DisplayMode interface {
	Kind() string
	displayMode()
}

// ImagesMode shows resources as an image grid.
type ImagesMode struct {
	Items []ResourceItem
}

// Kind implements DisplayMode.
func (ImagesMode) Kind() string { return KindImages }

func (ImagesMode) displayMode() {}

// PlaceholderMode marks a library that is not published yet.
type PlaceholderMode struct {
	TitleKey   string
	MessageKey string
}

// Kind implements DisplayMode.
func (PlaceholderMode) Kind() string { return KindPlaceholder }

func (PlaceholderMode) displayMode() {}

// placeholderMessages maps unpublished tabs to their message key.
var placeholderMessages = map[MediaType]string{ //nolint:gochecknoglobals
	MediaVideos:    "resourcesSection.comingSoonVideos",
	MediaDocuments: "resourcesSection.comingSoonDocuments",
}

// ModeFor returns the display mode of tab over items.
func ModeFor(tab MediaType, items []ResourceItem) DisplayMode {
	if tab == MediaImages {
		return ImagesMode{Items: VisibleItems(items, string(MediaImages))}
	}

	return PlaceholderMode{
		TitleKey:   ComingSoonTitleKey,
		MessageKey: placeholderMessages[tab],
	}
}

// ResourcesSection is the media block with its tab selector.
type ResourcesSection struct {
	tabs   []Tab
	items  []ResourceItem
	active *selection.Controller[MediaType]
}

// NewResourcesSection returns a section showing the first tab.
func NewResourcesSection(tabs []Tab, items []ResourceItem) (*ResourcesSection, error) {
	if len(tabs) == 0 {
		return nil, ErrNoCategories
	}

	return &ResourcesSection{
		tabs:   tabs,
		items:  items,
		active: selection.NewSticky(tabs[0].ID),
	}, nil
}

// Tabs returns the section tabs.
func (s *ResourcesSection) Tabs() []Tab {
	return s.tabs
}

// Keys returns the tab IDs in display order.
func (s *ResourcesSection) Keys() selection.Keys[MediaType] {
	return TabKeys(s.tabs)
}

// TabKeys returns the IDs of tabs in order.
func TabKeys(tabs []Tab) selection.Keys[MediaType] {
	keys := make(selection.Keys[MediaType], 0, len(tabs))
	for _, t := range tabs {
		keys = append(keys, t.ID)
	}

	return keys
}

// Select activates a tab.
func (s *ResourcesSection) Select(tab MediaType) {
	s.active.Select(tab)
}

// Active returns the active tab.
func (s *ResourcesSection) Active() MediaType {
	tab, _ := s.active.Active()
	return tab
}

// IsActive reports whether tab is active.
func (s *ResourcesSection) IsActive(tab MediaType) bool {
	return s.active.IsActive(tab)
}

// Mode returns the display mode of the active tab.
func (s *ResourcesSection) Mode() DisplayMode {
	return ModeFor(s.Active(), s.items)
}
