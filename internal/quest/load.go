package quest

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/lovequest/internal/validate"
)

//go:embed adventure.yaml
var defaultAdventure []byte

// defaultRegistry is built once from the embedded adventure.
var defaultRegistry *Registry

func init() {
	r, err := Parse(defaultAdventure)
	if err != nil {
		panic(fmt.Sprintf("embedded adventure: %v", err))
	}
	defaultRegistry = r
}

// Default returns the registry built from the embedded adventure.
func Default() *Registry {
	return defaultRegistry
}

// Load reads and validates an adventure file. An empty path returns Default().
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read adventure file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a YAML adventure document, checks it against the content
// schema and builds a registry from it.
func Parse(data []byte) (*Registry, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidRegistry, err)
	}

	doc, err := validate.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	if err := validate.Value(adventureSchema, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	var a Adventure
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decode adventure: %v", ErrInvalidRegistry, err)
	}
	return New(a)
}
