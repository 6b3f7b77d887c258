// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Vendor is supplier metadata. It is always embedded by value in a
// product, a decoration or an order, never referenced.
type Vendor struct {
	Name            string   `json:"name" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	Timeline        string   `json:"timeline"`
	Rating          float64  `json:"rating"`
	Specializations []string `json:"specializations"`
}

type Product struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	BulkPrice     decimal.Decimal `json:"bulkPrice"`
	BulkThreshold int             `json:"bulkThreshold"`
	Color         []string        `json:"color"`
	Brand         string          `json:"brand"`
	Material      string          `json:"material"`
	Vendor        Vendor          `json:"vendor"`
}

type Decoration struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	ColorPalette []string `json:"colorPalette"`
	Style        string   `json:"style"`
	Size         string   `json:"size"`
	Placement    string   `json:"placement"`
	FileFormat   string   `json:"fileFormat"`
	Vendor       Vendor   `json:"vendor"`
}
