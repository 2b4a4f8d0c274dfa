// Package i18n loads the site translation tables and negotiates the visitor
// language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds the flattened translation tables of all loaded languages.
// A Catalog is read-only after loading and safe for concurrent use.
type Catalog struct {
	tables   map[Language]map[string]string
	fallback Language
}

// LoadEmbedded loads the locales compiled into the binary.
func LoadEmbedded(fallback Language) (*Catalog, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded locales")
	}

	return Load(sub, fallback)
}

// LoadDir loads locale files from a directory on disk.
func LoadDir(dir string, fallback Language) (*Catalog, error) {
	return Load(os.DirFS(dir), fallback)
}

// Load reads every <lang>.yaml file at the root of fsys. Nested keys are
// flattened with dots, so news: {title: x} becomes "news.title".
func Load(fsys fs.FS, fallback Language) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read locales directory")
	}

	c := &Catalog{
		tables:   make(map[Language]map[string]string),
		fallback: fallback,
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		lang := Language(strings.TrimSuffix(entry.Name(), ".yaml"))

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read locale file %s", entry.Name())
		}

		var tree map[string]any
		if err = yaml.Unmarshal(content, &tree); err != nil {
			return nil, errors.Wrapf(err, "failed to parse locale file %s", entry.Name())
		}

		table := make(map[string]string)
		flatten("", tree, table)
		c.tables[lang] = table

		log.Debug().Str("language", string(lang)).Int("keys", len(table)).Msg("locale loaded")
	}

	if len(c.tables) == 0 {
		return nil, ErrNoLocales
	}

	return c, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(fullKey, v, out)
		case nil:
			out[fullKey] = ""
		default:
			out[fullKey] = fmt.Sprint(v)
		}
	}
}

// Languages returns the loaded languages in sorted order.
func (c *Catalog) Languages() []Language {
	out := make([]Language, 0, len(c.tables))
	for lang := range c.tables {
		out = append(out, lang)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Lookup returns the text of key in lang, falling back to the catalog's
// fallback language. Missing and empty texts yield ErrMissingTranslation.
func (c *Catalog) Lookup(lang Language, key string) (string, error) {
	if text := c.tables[lang][key]; text != "" {
		return text, nil
	}

	if lang != c.fallback {
		if text := c.tables[c.fallback][key]; text != "" {
			return text, nil
		}
	}

	return "", errors.Wrapf(ErrMissingTranslation, "key %q language %s", key, lang)
}

// Translator returns the lookup bound to one language.
func (c *Catalog) Translator(lang Language) Translator {
	return Translator{catalog: c, lang: lang}
}

// Translator translates keys for a single language.
type Translator struct {
	catalog *Catalog
	lang    Language
}

// Language returns the translator's language.
func (t Translator) Language() Language {
	return t.lang
}

// T returns the text of key. A key without text renders as the key itself so
// a gap in the tables stays visible without breaking the page.
func (t Translator) T(key string) string {
	if t.catalog == nil {
		return key
	}

	text, err := t.catalog.Lookup(t.lang, key)
	if err != nil {
		log.Debug().Err(err).Msg("rendering raw translation key")

		return key
	}

	return text
}
