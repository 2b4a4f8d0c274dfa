package navigation

import (
	"github.com/dseza/portal/internal/i18n"
)

// Translator looks up translation keys for one language.
type Translator interface {
	T(key string) string
}

// Resolver turns labels into display strings for one language.
type Resolver struct {
	lang       i18n.Language
	translator Translator
}

// NewResolver returns a resolver for lang backed by translator.
func NewResolver(lang i18n.Language, translator Translator) Resolver {
	return Resolver{lang: lang, translator: translator}
}

// ResolveTitle returns the display string of label. The first matching rule
// wins: a translatable label is looked up by key, an English visitor gets
// TitleEn when set, everyone else gets Title as is. An empty translation
// renders the key.
func (r Resolver) ResolveTitle(label Label) string {
	switch {
	case label.Translatable:
		if r.translator == nil {
			return label.Title
		}

		if title := r.translator.T(label.Title); title != "" {
			return title
		}

		return label.Title
	case r.lang == i18n.English && label.TitleEn != "":
		return label.TitleEn
	default:
		return label.Title
	}
}
