package repository

import (
	"context"

	"gorm.io/gorm"

	"car-shop-service/models"
)

// OrderRepository defines the interface for order ledger data access.
type OrderRepository interface {
	CreateAll(ctx context.Context, orders []models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateAll inserts every line row of a checkout inside one transaction, so
// either all rows persist or none do.
func (r *GormOrderRepository) CreateAll(ctx context.Context, orders []models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll retrieves all orders newest-first.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Order("order_time DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order with the given id.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
