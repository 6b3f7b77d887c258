// internal/services/pricing.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/storefront-backend/internal/models"
)

// Quote is the priced view of a product line. TotalPrice is exact; callers
// format to two decimals for display.
type Quote struct {
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	BulkApplied      bool            `json:"bulkApplied"`
	BulkThreshold    int             `json:"bulkThreshold"`
	UnitsToBulk      int             `json:"unitsToBulk"`
	ThresholdTotal   decimal.Decimal `json:"thresholdTotal"`
	PotentialSavings decimal.Decimal `json:"potentialSavings"`
}

// CalculatePrice applies bulk pricing: quantity >= bulkThreshold (inclusive)
// charges bulkPrice per unit, otherwise basePrice. Stock limits are the
// caller's concern.
func CalculatePrice(basePrice, bulkPrice decimal.Decimal, bulkThreshold, quantity int) (Quote, error) {
	switch {
	case quantity < 1:
		return Quote{}, newValidationError("quantity", "quantity must be at least 1")
	case bulkThreshold < 1:
		return Quote{}, newValidationError("bulkThreshold", "bulkThreshold must be at least 1")
	case basePrice.IsNegative() || bulkPrice.IsNegative():
		return Quote{}, newValidationError("basePrice", "prices must not be negative")
	case bulkPrice.GreaterThan(basePrice):
		return Quote{}, newValidationError("bulkPrice", "bulkPrice must not exceed basePrice")
	}

	q := Quote{
		Quantity:         quantity,
		UnitPrice:        basePrice,
		BulkThreshold:    bulkThreshold,
		ThresholdTotal:   bulkPrice.Mul(decimal.NewFromInt(int64(bulkThreshold))),
		PotentialSavings: basePrice.Sub(bulkPrice).Mul(decimal.NewFromInt(int64(bulkThreshold))),
	}

	if quantity >= bulkThreshold {
		q.UnitPrice = bulkPrice
		q.BulkApplied = true
	} else {
		q.UnitsToBulk = bulkThreshold - quantity
	}

	q.TotalPrice = q.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return q, nil
}

func QuoteProduct(p models.Product, quantity int) (Quote, error) {
	return CalculatePrice(p.BasePrice, p.BulkPrice, p.BulkThreshold, quantity)
}
