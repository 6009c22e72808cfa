package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedYAML []byte

// LoadSeed builds a Service from the catalog compiled into the binary.
func LoadSeed() (*Service, error) {
	return loadBytes(seedYAML)
}

// LoadFile builds a Service from a catalog file on disk, allowing a
// deployment to replace the built-in product list without rebuilding.
func LoadFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return loadBytes(data)
}

func loadBytes(raw []byte) (*Service, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for _, p := range data.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product with empty id")
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("catalog: product %s has unknown category %q", p.ID, p.Category)
		}
	}
	return New(data), nil
}
