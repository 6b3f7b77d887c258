package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/models"
)

// GormStore keeps orders in the relational "orders" table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context) ([]models.Order, error) {
	var records []models.OrderRecord
	err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, wrap("list", err)
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, rec.ToOrder())
	}
	return orders, nil
}

func (s *GormStore) Append(ctx context.Context, order models.Order) error {
	rec := models.NewOrderRecord(order)
	return wrap("append", s.db.WithContext(ctx).Create(&rec).Error)
}
