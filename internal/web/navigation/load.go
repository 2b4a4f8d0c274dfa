package navigation

import (
	_ "embed"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var embeddedMenu []byte

// Menu is the menu definition file.
type Menu struct {
	Items []MenuItem `yaml:"items" validate:"required,min=1,dive"`
}

// LoadDefault parses the menu compiled into the binary.
func LoadDefault() ([]MenuItem, error) {
	return Parse(embeddedMenu)
}

// LoadFile parses a menu definition from disk.
func LoadFile(path string) ([]MenuItem, error) {
	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "failed to read menu file")
	}

	return Parse(content)
}

// Parse decodes and validates a YAML menu definition.
func Parse(content []byte) ([]MenuItem, error) {
	var menu Menu

	if err := yaml.Unmarshal(content, &menu); err != nil {
		return nil, errors.Wrap(err, "failed to parse menu")
	}

	if err := validator.New().Struct(menu); err != nil {
		return nil, errors.Wrap(err, "invalid menu")
	}

	return menu.Items, nil
}
