package repository

import (
	"context"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRepository defines the data access contract for orders and their
// line items. Multi-record writes take an explicit tx so the service can
// scope one transaction per logical operation.
type OrderRepository interface {
	// Create persists the order together with its items. The unique-key
	// constraint on the id resolves concurrent duplicate creates: exactly
	// one insert wins, the loser surfaces gorm.ErrDuplicatedKey.
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error

	FindByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error)
	Update(ctx context.Context, o *model.Order) error

	// Delete removes the order and cascades to its items.
	Delete(ctx context.Context, id string) error

	// Revenue sums totals of sales orders in revenue-bearing statuses.
	Revenue(ctx context.Context) (decimal.Decimal, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Party").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Product").
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PartyID != "" {
		q = q.Where("party_id = ?", filter.PartyID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Party").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Product").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "Party").Save(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var raw decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("SUM(total)").
		Where("type = ? AND status IN ?", model.OrderTypeSales, model.RevenueStatuses).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return raw.Decimal, nil
}

func (r *orderRepo) DB() *gorm.DB { return r.db }
