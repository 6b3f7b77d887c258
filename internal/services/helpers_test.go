package services

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/storefront-backend/internal/models"
)

func testVendor(name string) models.Vendor {
	return models.Vendor{
		Name:            name,
		Address:         "1 Main St",
		Phone:           "555-0100",
		Email:           "hello@" + name + ".test",
		Timeline:        "5 business days",
		Rating:          4.5,
		Specializations: []string{"screen printing"},
	}
}

func testProducts() []models.Product {
	return []models.Product{
		{
			Name:          "Mug",
			Type:          "drinkware",
			Quantity:      500,
			BasePrice:     decimal.NewFromInt(10),
			BulkPrice:     decimal.NewFromInt(7),
			BulkThreshold: 50,
			Color:         []string{"white", "black"},
			Brand:         "CeramiCo",
			Material:      "ceramic",
			Vendor:        testVendor("mugworks"),
		},
		{
			Name:          "T-Shirt",
			Type:          "apparel",
			Quantity:      20,
			BasePrice:     decimal.RequireFromString("15.50"),
			BulkPrice:     decimal.RequireFromString("12.25"),
			BulkThreshold: 10,
			Vendor:        testVendor("teeshop"),
		},
	}
}

func testDecorations() []models.Decoration {
	return []models.Decoration{
		{
			Name:         "Sunset Logo",
			Type:         "logo",
			ColorPalette: []string{"orange", "purple"},
			Style:        "flat",
			Size:         "small",
			Placement:    "front",
			FileFormat:   "svg",
			Vendor:       testVendor("designhaus"),
		},
	}
}

func testCatalog() *CatalogService {
	catalog, err := NewCatalogService(testProducts(), testDecorations())
	if err != nil {
		panic(err)
	}
	return catalog
}

func intPtr(v int) *int { return &v }
