// internal/models/common.go
package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, matching the catalog files.
	decimal.MarshalJSONWithoutQuotes = true
}

// Enums
type DesignType string

const (
	DesignTypePremade DesignType = "premade"
	DesignTypeCustom  DesignType = "custom"
)

func (d DesignType) Valid() bool {
	return d == DesignTypePremade || d == DesignTypeCustom
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderKind string

const (
	OrderKindProduct    OrderKind = "product"
	OrderKindDecoration OrderKind = "decoration"
)
