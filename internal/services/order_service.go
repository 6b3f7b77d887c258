// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/repositories"
)

// OrderNotifier is told about every order that was persisted.
type OrderNotifier interface {
	OrderCreated(order models.Order)
}

type OrderService struct {
	repo      repositories.OrderRepository
	catalog   *CatalogService
	validator *OrderValidator
	notifier  OrderNotifier
}

// OrderFilter narrows ListOrders with naive matching. Empty fields match all.
type OrderFilter struct {
	Search     string
	Status     models.OrderStatus
	DesignType models.DesignType
}

func NewOrderService(repo repositories.OrderRepository, catalog *CatalogService, validator *OrderValidator, notifier OrderNotifier) *OrderService {
	if validator == nil {
		validator = NewOrderValidator(nil, nil)
	}
	return &OrderService{
		repo:      repo,
		catalog:   catalog,
		validator: validator,
		notifier:  notifier,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	order, err := s.validator.Validate(*req)
	if err != nil {
		return nil, err
	}

	if order.ProductLine != nil {
		if err := s.priceLine(order); err != nil {
			return nil, err
		}
	} else {
		s.attachDecorationVendor(order)
	}

	if err := s.repo.Append(ctx, *order); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"kind":        order.Kind(),
		"design_type": order.DesignType,
	}).Info("Order created")

	if s.notifier != nil {
		go s.notifier.OrderCreated(*order)
	}

	return order, nil
}

// priceLine reprices a product line from the catalog, ignoring any prices
// the client sent, and fills in the product's vendor when none was given.
func (s *OrderService) priceLine(order *models.Order) error {
	line := order.ProductLine

	product, err := s.catalog.Product(line.ProductName)
	if err != nil {
		if IsNotFound(err) {
			return newValidationError("productName", fmt.Sprintf("unknown product %q", line.ProductName))
		}
		return err
	}

	if line.Quantity > product.Quantity {
		return newValidationError("quantity",
			fmt.Sprintf("quantity %d exceeds available stock of %d", line.Quantity, product.Quantity))
	}

	quote, err := QuoteProduct(product, line.Quantity)
	if err != nil {
		return err
	}

	line.ProductType = product.Type
	line.BasePrice = product.BasePrice
	line.UnitPrice = quote.UnitPrice
	line.TotalPrice = quote.TotalPrice

	if order.Vendor == nil {
		vendor := product.Vendor
		order.Vendor = &vendor
	}
	return nil
}

func (s *OrderService) attachDecorationVendor(order *models.Order) {
	if order.Vendor != nil || order.DesignType != models.DesignTypePremade {
		return
	}

	decoration, err := s.catalog.Decoration(order.SelectedDesign)
	if err != nil {
		return
	}
	vendor := decoration.Vendor
	order.Vendor = &vendor
}

func (s *OrderService) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if filter == (OrderFilter{}) {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if filter.matches(&o) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (f OrderFilter) matches(o *models.Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.DesignType != "" && o.DesignType != f.DesignType {
		return false
	}
	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)
	fields := []string{o.ID, o.CustomerName, o.CustomerEmail}
	if o.ProductLine != nil {
		fields = append(fields, o.ProductName)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// IsRepositoryFailure reports whether err came from the order store.
func IsRepositoryFailure(err error) bool {
	var repoErr *repositories.RepositoryError
	return errors.As(err, &repoErr)
}
