// Package catalog holds the fixed, ordered product catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var seedProducts []byte

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// Catalog is immutable once loaded. Products keep their seed order.
type Catalog struct {
	products []models.Product
	byID     map[int64]int
}

// LoadEmbedded loads the seed catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Parse(seedProducts)
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Load returns the catalog at path, or the embedded seed when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return LoadEmbedded()
	}

	return LoadFile(path)
}

func Parse(data []byte) (*Catalog, error) {

	var file catalogFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(file.Products)
}

// New validates products and builds a catalog from them.
func New(products []models.Product) (*Catalog, error) {

	validate := validator.New()

	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
	}

	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product at position %d: %w", i, err)
		}

		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}

		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// Products returns a copy of the catalog in seed order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)

	return out
}

func (c *Catalog) Get(id int64) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}

	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
