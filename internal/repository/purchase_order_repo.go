package repository

import (
	"context"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"gorm.io/gorm"
)

// PurchaseOrderRepository defines the data access contract for POs.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error)
	Update(ctx context.Context, po *model.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Vendor").First(&po, "id = ?", id).Error
	return &po, err
}

func (r *purchaseOrderRepo) List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	var pos []model.PurchaseOrder
	var total int64

	q := r.db.WithContext(ctx).Model(&model.PurchaseOrder{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VendorID != "" {
		q = q.Where("vendor_id = ?", filter.VendorID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Most recent first
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Vendor").Order("date DESC").Limit(filter.Limit).Offset(offset).Find(&pos).Error
	return pos, total, err
}

func (r *purchaseOrderRepo) Update(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Omit("Vendor").Save(po).Error
}

func (r *purchaseOrderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.PurchaseOrder{}, "id = ?", id).Error
}
