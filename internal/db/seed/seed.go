// Package seed fills an empty content database from a YAML file.
package seed

import (
	_ "embed"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/dseza/portal/internal/content"
	dbcontent "github.com/dseza/portal/internal/db/controller/content"
	"github.com/dseza/portal/internal/db/models"
)

//go:embed content.yaml
var defaultContent []byte

// ErrInvalidDate is returned for item dates not in dd/mm/yyyy form.
var ErrInvalidDate = errors.New("invalid date")

// News is a news entry of the seed file.
type News struct {
	Category string `yaml:"category" validate:"required,news_category"`
	Date     string `yaml:"date"     validate:"required"`
	Title    string `yaml:"title"    validate:"required"`
	Excerpt  string `yaml:"excerpt"`
	Image    string `yaml:"image"    validate:"omitempty,url"`
}

// Resource is a resource entry of the seed file.
type Resource struct {
	MediaType string `yaml:"mediaType" validate:"required,media_type"`
	Title     string `yaml:"title"     validate:"required"`
	Date      string `yaml:"date"      validate:"required"`
	ImageURL  string `yaml:"imageUrl"  validate:"omitempty,url"`
}

// File is the seed file layout.
type File struct {
	News      []News     `yaml:"news"      validate:"dive"`
	Resources []Resource `yaml:"resources" validate:"dive"`
}

// Result reports what a seed run inserted.
type Result struct {
	News      int
	Resources int
}

// Default returns the embedded seed file.
func Default() (*File, error) {
	return Parse(defaultContent)
}

// LoadFile reads and validates a seed file from disk.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, errors.Wrap(err, "failed to read seed file")
	}

	return Parse(b)
}

// Parse decodes and validates seed content.
func Parse(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed file")
	}

	if err := newValidator().Struct(&f); err != nil {
		return nil, errors.Wrap(err, "invalid seed file")
	}

	for i := range f.News {
		if _, err := parseDate(f.News[i].Date); err != nil {
			return nil, errors.Wrapf(err, "news %d", i)
		}
	}

	for i := range f.Resources {
		if _, err := parseDate(f.Resources[i].Date); err != nil {
			return nil, errors.Wrapf(err, "resource %d", i)
		}
	}

	return &f, nil
}

// Apply inserts the seed items into each table that is still empty.
func Apply(db *gorm.DB, f *File) (Result, error) {
	var res Result

	newsCount, resourceCount, err := dbcontent.Counts(db)
	if err != nil {
		return res, errors.Wrap(err, "failed to count content")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if newsCount == 0 {
			for i, n := range f.News {
				d, _ := parseDate(n.Date) //nolint:errcheck // validated by Parse
				item := models.NewsItem{
					Position:   i + 1,
					Category:   n.Category,
					Date:       d,
					TitleKey:   n.Title,
					ExcerptKey: n.Excerpt,
					Image:      n.Image,
				}
				if err := dbcontent.CreateNews(tx, &item); err != nil {
					return err
				}
				res.News++
			}
		}

		if resourceCount == 0 {
			for i, r := range f.Resources {
				d, _ := parseDate(r.Date) //nolint:errcheck // validated by Parse
				item := models.ResourceItem{
					Position:  i + 1,
					MediaType: r.MediaType,
					Title:     r.Title,
					Date:      d,
					ImageURL:  r.ImageURL,
				}
				if err := dbcontent.CreateResource(tx, &item); err != nil {
					return err
				}
				res.Resources++
			}
		}

		return nil
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to seed content")
	}

	log.Info().
		Int("news", res.News).
		Int("resources", res.Resources).
		Msg("content seeded")

	return res, nil
}

// newValidator checks categories and media types against the tabs the site
// shows, so seeded items always land in a selectable tab.
func newValidator() *validator.Validate {
	v := validator.New()

	categories := content.CategoryKeys(content.NewsCategories)
	tabs := content.TabKeys(content.ResourceTabs)

	//nolint:errcheck // tags are static and valid
	_ = v.RegisterValidation("news_category", func(fl validator.FieldLevel) bool {
		return categories.Known(fl.Field().String())
	})

	//nolint:errcheck // tags are static and valid
	_ = v.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		return tabs.Known(content.MediaType(fl.Field().String()))
	})

	return v
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(content.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(ErrInvalidDate, s)
	}

	return t, nil
}
