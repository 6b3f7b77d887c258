// internal/models/order.go
package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Order is either a product order (Line != nil) or a decoration-only
// order. The embedded line keeps the flat wire shape: its fields appear
// at the top level of the JSON object and vanish entirely when nil.
type Order struct {
	ID string `json:"id"`
	*ProductLine

	DesignType       DesignType `json:"designType"`
	SelectedDesign   string     `json:"selectedDesign,omitempty"`
	CustomDesignFile string     `json:"customDesignFile,omitempty"`

	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	OrderDate     time.Time   `json:"orderDate"`
	Status        OrderStatus `json:"status"`

	Vendor *Vendor `json:"vendor,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// ProductLine holds the priced product part of an order.
type ProductLine struct {
	ProductName string          `json:"productName"`
	ProductType string          `json:"productType,omitempty"`
	Quantity    int             `json:"quantity"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

func (o *Order) Kind() OrderKind {
	if o.ProductLine != nil {
		return OrderKindProduct
	}
	return OrderKindDecoration
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	if o.ProductLine != nil {
		line := *o.ProductLine
		o.ProductLine = &line
	}
	if o.Vendor != nil {
		vendor := *o.Vendor
		vendor.Specializations = slices.Clone(vendor.Specializations)
		o.Vendor = &vendor
	}
	return o
}

// DesignReference returns the premade design name or the custom upload
// path, whichever the design type selects.
func (o *Order) DesignReference() string {
	if o.DesignType == DesignTypeCustom {
		return o.CustomDesignFile
	}
	return o.SelectedDesign
}

// OrderCollection is the persisted document shape.
type OrderCollection struct {
	Orders []Order `json:"orders"`
}
