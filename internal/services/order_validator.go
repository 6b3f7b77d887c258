// internal/services/order_validator.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName" validate:"notblank"`
	CustomerEmail string             `json:"customerEmail" validate:"notblank"`
	DesignType    models.DesignType  `json:"designType" validate:"required,oneof=premade custom"`
	Status        models.OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed cancelled"`
	Vendor        *models.Vendor     `json:"vendor,omitempty"`

	ProductName string           `json:"productName,omitempty"`
	ProductType string           `json:"productType,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	BasePrice   *decimal.Decimal `json:"basePrice,omitempty"`
	TotalPrice  *decimal.Decimal `json:"totalPrice,omitempty"`

	SelectedDesign   string `json:"selectedDesign,omitempty"`
	CustomDesignFile string `json:"customDesignFile,omitempty"`
	// Deprecated alias of CustomDesignFile, accepted on input only.
	CustomImagePath string `json:"customImagePath,omitempty"`

	OrderDate *time.Time `json:"orderDate,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type Clock func() time.Time

type IDGenerator func(now time.Time) (string, error)

// NewOrderID returns ORD-<unix millis>-<9 random base-36 chars>. Collisions
// are improbable, not impossible.
func NewOrderID(now time.Time) (string, error) {
	suffix, err := utils.GenerateRandomSuffix(9)
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix), nil
}

// OrderValidator turns a submission into a normalized order. It has no
// side effects beyond reading the clock and drawing an id.
type OrderValidator struct {
	now   Clock
	newID IDGenerator
}

func NewOrderValidator(now Clock, newID IDGenerator) *OrderValidator {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewOrderID
	}
	return &OrderValidator{now: now, newID: newID}
}

func (v *OrderValidator) Validate(req CreateOrderRequest) (*models.Order, error) {
	normalizeRequest(&req)

	if err := checkFields(&req); err != nil {
		return nil, err
	}

	if req.DesignType == models.DesignTypeCustom && req.CustomDesignFile == "" {
		return nil, newValidationError("customDesignFile", "missing custom design reference")
	}

	var line *models.ProductLine
	if req.ProductName != "" {
		if req.Quantity == nil {
			return nil, newValidationError("quantity", "quantity is required for product orders")
		}
		if *req.Quantity < 1 {
			return nil, newValidationError("quantity", "quantity must be at least 1")
		}
		line = &models.ProductLine{
			ProductName: req.ProductName,
			ProductType: req.ProductType,
			Quantity:    *req.Quantity,
		}
		if req.BasePrice != nil {
			line.BasePrice = *req.BasePrice
			line.UnitPrice = *req.BasePrice
		}
		if req.TotalPrice != nil {
			line.TotalPrice = *req.TotalPrice
		}
	} else if req.DesignType == models.DesignTypePremade && req.SelectedDesign == "" {
		return nil, newValidationError("selectedDesign", "order must reference a product or a design")
	}

	now := v.now()
	id, err := v.newID(now)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:            id,
		ProductLine:   line,
		DesignType:    req.DesignType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		OrderDate:     now.UTC(),
		Status:        models.OrderStatusPending,
		Notes:         req.Notes,
	}

	switch req.DesignType {
	case models.DesignTypePremade:
		order.SelectedDesign = req.SelectedDesign
	case models.DesignTypeCustom:
		order.CustomDesignFile = req.CustomDesignFile
	}

	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		order.OrderDate = *req.OrderDate
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.Vendor != nil {
		vendor := *req.Vendor
		order.Vendor = &vendor
	}

	return order, nil
}

// checkFields runs the struct tags. Any vendor field failure collapses to
// a single "invalid vendor" error.
func checkFields(req *CreateOrderRequest) error {
	details := utils.GetValidationErrors(utils.ValidateStruct(req))
	if len(details) == 0 {
		return nil
	}

	first := details[0]
	if strings.HasPrefix(first.Field, "vendor.") {
		return &ValidationError{Field: "vendor", Message: "invalid vendor", Details: details}
	}
	return &ValidationError{Field: first.Field, Message: first.Message, Details: details}
}

func normalizeRequest(req *CreateOrderRequest) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.ProductType = strings.TrimSpace(req.ProductType)
	req.SelectedDesign = strings.TrimSpace(req.SelectedDesign)
	req.CustomDesignFile = strings.TrimSpace(req.CustomDesignFile)
	req.CustomImagePath = strings.TrimSpace(req.CustomImagePath)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.CustomDesignFile == "" {
		req.CustomDesignFile = req.CustomImagePath
	}
	req.CustomImagePath = ""

	if req.Vendor != nil {
		vendor := *req.Vendor
		vendor.Name = strings.TrimSpace(vendor.Name)
		vendor.Address = strings.TrimSpace(vendor.Address)
		vendor.Phone = strings.TrimSpace(vendor.Phone)
		vendor.Email = strings.TrimSpace(vendor.Email)
		req.Vendor = &vendor
	}
}
