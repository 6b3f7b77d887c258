// internal/services/catalog_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/models"
)

const (
	productsFile    = "products.json"
	decorationsFile = "decorations.json"
)

// CatalogService serves the read-only product and decoration catalog.
// It is built once at startup and never mutated.
type CatalogService struct {
	products        []models.Product
	decorations     []models.Decoration
	productIndex    map[string]int
	decorationIndex map[string]int
}

func NewCatalogService(products []models.Product, decorations []models.Decoration) (*CatalogService, error) {
	s := &CatalogService{
		products:        slices.Clone(products),
		decorations:     slices.Clone(decorations),
		productIndex:    make(map[string]int, len(products)),
		decorationIndex: make(map[string]int, len(decorations)),
	}

	for i, p := range s.products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := s.productIndex[p.Name]; dup {
			return nil, fmt.Errorf("duplicate product %q", p.Name)
		}
		s.productIndex[p.Name] = i
	}

	for i, d := range s.decorations {
		if d.Name == "" {
			return nil, fmt.Errorf("decoration at index %d has no name", i)
		}
		if _, dup := s.decorationIndex[d.Name]; dup {
			return nil, fmt.Errorf("duplicate decoration %q", d.Name)
		}
		s.decorationIndex[d.Name] = i
	}

	return s, nil
}

// LoadCatalog reads products.json and decorations.json from dataDir.
func LoadCatalog(dataDir string) (*CatalogService, error) {
	var productDoc struct {
		Products []models.Product `json:"products"`
	}
	if err := readJSON(filepath.Join(dataDir, productsFile), &productDoc); err != nil {
		return nil, err
	}

	var decorationDoc struct {
		Decorations []models.Decoration `json:"decorations"`
	}
	if err := readJSON(filepath.Join(dataDir, decorationsFile), &decorationDoc); err != nil {
		return nil, err
	}

	catalog, err := NewCatalogService(productDoc.Products, decorationDoc.Decorations)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", dataDir, err)
	}

	logrus.WithFields(logrus.Fields{
		"products":    len(catalog.products),
		"decorations": len(catalog.decorations),
	}).Info("Catalog loaded")

	return catalog, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func validateProduct(p models.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("product without a name")
	case p.Quantity < 0:
		return fmt.Errorf("product %q: quantity must be >= 0", p.Name)
	case p.BasePrice.IsNegative() || p.BulkPrice.IsNegative():
		return fmt.Errorf("product %q: prices must be >= 0", p.Name)
	case p.BulkPrice.GreaterThan(p.BasePrice):
		return fmt.Errorf("product %q: bulkPrice exceeds basePrice", p.Name)
	case p.BulkThreshold < 1:
		return fmt.Errorf("product %q: bulkThreshold must be >= 1", p.Name)
	}
	return nil
}

func (s *CatalogService) Products() []models.Product {
	return slices.Clone(s.products)
}

func (s *CatalogService) Decorations() []models.Decoration {
	return slices.Clone(s.decorations)
}

func (s *CatalogService) Product(name string) (models.Product, error) {
	i, ok := s.productIndex[name]
	if !ok {
		return models.Product{}, &NotFoundError{Resource: "product", Key: name}
	}
	return s.products[i], nil
}

func (s *CatalogService) Decoration(name string) (models.Decoration, error) {
	i, ok := s.decorationIndex[name]
	if !ok {
		return models.Decoration{}, &NotFoundError{Resource: "decoration", Key: name}
	}
	return s.decorations[i], nil
}
