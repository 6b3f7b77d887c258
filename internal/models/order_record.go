// internal/models/order_record.go
package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderRecord is the relational row behind an Order.
type OrderRecord struct {
	ID   string    `gorm:"primaryKey;size:64"`
	Kind OrderKind `gorm:"type:varchar(20);not null"`

	ProductName string          `gorm:"size:255;index"`
	ProductType string          `gorm:"size:100"`
	Quantity    int
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2)"`

	DesignType       DesignType `gorm:"type:varchar(20);not null;index"`
	SelectedDesign   string     `gorm:"size:255"`
	CustomDesignFile string     `gorm:"size:512"`

	CustomerName  string      `gorm:"size:255;not null"`
	CustomerEmail string      `gorm:"size:255;not null;index"`
	OrderDate     time.Time   `gorm:"not null"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index"`

	Vendor VendorColumns `gorm:"embedded;embeddedPrefix:vendor_"`
	Notes  string        `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
}

func (OrderRecord) TableName() string {
	return "orders"
}

type VendorColumns struct {
	Name            string         `gorm:"size:255"`
	Address         string         `gorm:"size:512"`
	Phone           string         `gorm:"size:50"`
	Email           string         `gorm:"size:255"`
	Timeline        string         `gorm:"size:255"`
	Rating          float64        `gorm:"type:decimal(3,2)"`
	Specializations pq.StringArray `gorm:"type:text[]"`
}

func NewOrderRecord(o Order) OrderRecord {
	rec := OrderRecord{
		ID:               o.ID,
		Kind:             o.Kind(),
		DesignType:       o.DesignType,
		SelectedDesign:   o.SelectedDesign,
		CustomDesignFile: o.CustomDesignFile,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		OrderDate:        o.OrderDate,
		Status:           o.Status,
		Notes:            o.Notes,
	}

	if line := o.ProductLine; line != nil {
		rec.ProductName = line.ProductName
		rec.ProductType = line.ProductType
		rec.Quantity = line.Quantity
		rec.BasePrice = line.BasePrice
		rec.UnitPrice = line.UnitPrice
		rec.TotalPrice = line.TotalPrice
	}

	if v := o.Vendor; v != nil {
		rec.Vendor = VendorColumns{
			Name:            v.Name,
			Address:         v.Address,
			Phone:           v.Phone,
			Email:           v.Email,
			Timeline:        v.Timeline,
			Rating:          v.Rating,
			Specializations: pq.StringArray(v.Specializations),
		}
	}

	return rec
}

func (r OrderRecord) ToOrder() Order {
	o := Order{
		ID:               r.ID,
		DesignType:       r.DesignType,
		SelectedDesign:   r.SelectedDesign,
		CustomDesignFile: r.CustomDesignFile,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		OrderDate:        r.OrderDate,
		Status:           r.Status,
		Notes:            r.Notes,
	}

	if r.Kind == OrderKindProduct {
		o.ProductLine = &ProductLine{
			ProductName: r.ProductName,
			ProductType: r.ProductType,
			Quantity:    r.Quantity,
			BasePrice:   r.BasePrice,
			UnitPrice:   r.UnitPrice,
			TotalPrice:  r.TotalPrice,
		}
	}

	// A vendor is only ever stored after validation, so a blank name means none.
	if r.Vendor.Name != "" {
		o.Vendor = &Vendor{
			Name:            r.Vendor.Name,
			Address:         r.Vendor.Address,
			Phone:           r.Vendor.Phone,
			Email:           r.Vendor.Email,
			Timeline:        r.Vendor.Timeline,
			Rating:          r.Vendor.Rating,
			Specializations: []string(r.Vendor.Specializations),
		}
	}

	return o
}
