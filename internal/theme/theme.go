// Package theme holds the light/dark theme tag. The theme only selects styles;
// no selection or filtering logic branches on it.
package theme

import (
	"errors"
	"strings"
)

// Theme is a color theme tag.
type Theme string

const (
	// Light is the default theme.
	Light Theme = "light"

	// Dark is the dark theme.
	Dark Theme = "dark"
)

// ErrUnknownTheme is returned for tags other than light and dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse normalizes a theme tag.
func Parse(tag string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(tag))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", ErrUnknownTheme
	}
}

// Pick returns light or dark depending on the theme. Templates use it to pick
// style classes.
func (t Theme) Pick(light, dark string) string {
	if t == Dark {
		return dark
	}

	return light
}

// Other returns the opposite theme, used by the theme switch link.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}
