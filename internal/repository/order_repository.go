package repository

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/model/entity"
)

// OrderRepository persists orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&o).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Order("order_id").Find(&orders).Error
	return orders, translate(err)
}

// ListByPartner returns a partner's orders newest-first, each with its
// service loaded for display.
func (r *OrderRepository) ListByPartner(ctx context.Context, partnerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("partner_id = ?", partnerID).
		Order("execution_date DESC").
		Find(&orders).Error
	return orders, translate(err)
}
