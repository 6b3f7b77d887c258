package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/storefront-backend/internal/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedValidator() *OrderValidator {
	return NewOrderValidator(
		func() time.Time { return fixedNow },
		func(time.Time) (string, error) { return "ORD-fixed", nil },
	)
}

func premadeRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		DesignType:     models.DesignTypePremade,
		SelectedDesign: "Sunset Logo",
	}
}

func TestNewOrderID_Format(t *testing.T) {
	id, err := NewOrderID(fixedNow)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-1772366400000-[0-9a-z]{9}$`), id)

	other, err := NewOrderID(fixedNow)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestOrderValidator_AppliesDefaults(t *testing.T) {
	order, err := fixedValidator().Validate(premadeRequest())
	require.NoError(t, err)

	assert.Equal(t, "ORD-fixed", order.ID)
	assert.Equal(t, fixedNow, order.OrderDate)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Sunset Logo", order.SelectedDesign)
	assert.Nil(t, order.ProductLine)
	assert.Nil(t, order.Vendor)
}

func TestOrderValidator_KeepsSuppliedDateAndStatus(t *testing.T) {
	req := premadeRequest()
	when := time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC)
	req.OrderDate = &when
	req.Status = models.OrderStatusProcessing

	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, when, order.OrderDate)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
}

func TestOrderValidator_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateOrderRequest)
		field   string
		message string
	}{
		{
			name:    "missing customer name",
			mutate:  func(r *CreateOrderRequest) { r.CustomerName = "" },
			field:   "customerName",
			message: "customerName is required",
		},
		{
			name:    "blank customer email",
			mutate:  func(r *CreateOrderRequest) { r.CustomerEmail = "   " },
			field:   "customerEmail",
			message: "customerEmail is required",
		},
		{
			name:    "missing design type",
			mutate:  func(r *CreateOrderRequest) { r.DesignType = "" },
			field:   "designType",
			message: "designType is required",
		},
		{
			name:    "unknown design type",
			mutate:  func(r *CreateOrderRequest) { r.DesignType = "digital" },
			field:   "designType",
			message: "designType must be one of [premade custom]",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreateOrderRequest) { r.Status = "shipped" },
			field:   "status",
			message: "status must be one of [pending processing completed cancelled]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := premadeRequest()
			tt.mutate(&req)

			_, err := fixedValidator().Validate(req)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestOrderValidator_InvalidVendor(t *testing.T) {
	req := premadeRequest()
	vendor := testVendor("acme")
	vendor.Phone = ""
	req.Vendor = &vendor

	_, err := fixedValidator().Validate(req)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid vendor")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotEmpty(t, vErr.Details)
	assert.Equal(t, "vendor.phone", vErr.Details[0].Field)
}

func TestOrderValidator_CompleteVendorIsCopied(t *testing.T) {
	req := premadeRequest()
	vendor := testVendor("acme")
	req.Vendor = &vendor

	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	require.NotNil(t, order.Vendor)
	assert.Equal(t, "acme", order.Vendor.Name)

	vendor.Name = "mutated"
	assert.Equal(t, "acme", order.Vendor.Name)
}

func TestOrderValidator_CustomDesignReference(t *testing.T) {
	req := premadeRequest()
	req.DesignType = models.DesignTypeCustom
	req.SelectedDesign = "Sunset Logo"

	_, err := fixedValidator().Validate(req)
	assert.EqualError(t, err, "missing custom design reference")

	req.CustomDesignFile = "/customDesigns/custom_1_abc.png"
	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "/customDesigns/custom_1_abc.png", order.CustomDesignFile)
	assert.Empty(t, order.SelectedDesign, "premade name is dropped from custom orders")
}

func TestOrderValidator_CustomImagePathAlias(t *testing.T) {
	req := premadeRequest()
	req.DesignType = models.DesignTypeCustom
	req.CustomImagePath = "/customDesigns/custom_2_def.png"

	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "/customDesigns/custom_2_def.png", order.CustomDesignFile)
	assert.Equal(t, order.CustomDesignFile, order.DesignReference())
}

func TestOrderValidator_ProductLine(t *testing.T) {
	req := premadeRequest()
	req.ProductName = "Mug"

	_, err := fixedValidator().Validate(req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	req.Quantity = intPtr(0)
	_, err = fixedValidator().Validate(req)
	assert.EqualError(t, err, "quantity must be at least 1")

	req.Quantity = intPtr(50)
	total := decimal.NewFromInt(1)
	req.TotalPrice = &total
	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	require.NotNil(t, order.ProductLine)
	assert.Equal(t, models.OrderKindProduct, order.Kind())
	assert.Equal(t, 50, order.Quantity)
	assert.True(t, order.TotalPrice.Equal(total), "client price is kept until the service reprices it")
}

func TestOrderValidator_PremadeNeedsProductOrDesign(t *testing.T) {
	req := premadeRequest()
	req.SelectedDesign = ""

	_, err := fixedValidator().Validate(req)
	assert.EqualError(t, err, "order must reference a product or a design")
}

func TestOrderValidator_AcceptsAnyNonEmptyEmail(t *testing.T) {
	req := premadeRequest()
	req.CustomerEmail = "bob"

	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "bob", order.CustomerEmail)
}

func TestOrderValidator_TrimsInput(t *testing.T) {
	req := premadeRequest()
	req.CustomerName = "  Ada  "
	req.Notes = " gift wrap "

	order, err := fixedValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "Ada", order.CustomerName)
	assert.Equal(t, "gift wrap", order.Notes)
}
