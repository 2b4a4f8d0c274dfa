// Package navigation implements the site's top menu bar: menu items, the
// mega-menu panels they may expand, and language-aware label resolution.
package navigation

import "errors"

// ErrUnknownMenuItem is returned when a click targets an index outside the menu.
var ErrUnknownMenuItem = errors.New("unknown menu item")

// Label is the display text of a menu entry.
//
// When Translatable is set, Title is a translation key. Otherwise Title is the
// literal text for the default language and TitleEn, when present, the literal
// English text.
type Label struct {
	Title        string `yaml:"title"        validate:"required"`
	TitleEn      string `yaml:"titleEn"`
	Translatable bool   `yaml:"translatable"`
}

// Link is an entry inside a mega-menu section.
type Link struct {
	Label `yaml:",inline"`
	URL   string `yaml:"url" validate:"required"`
}

// Section is a titled group of links inside a mega-menu panel.
type Section struct {
	Label `yaml:",inline"`
	Links []Link `yaml:"links" validate:"required,min=1,dive"`
}

// MegaMenu is the panel an expandable menu item opens below the bar.
type MegaMenu struct {
	Sections []Section `yaml:"sections" validate:"required,min=1,dive"`
}

// MenuItem is a top-level menu entry. An item with a MegaMenu toggles its panel
// on click instead of navigating to URL.
type MenuItem struct {
	Label    `yaml:",inline"`
	URL      string    `yaml:"url"      validate:"required"`
	MegaMenu *MegaMenu `yaml:"megaMenu"`
}

// HasMegaMenu reports whether the item expands a panel.
func (m MenuItem) HasMegaMenu() bool {
	return m.MegaMenu != nil
}
