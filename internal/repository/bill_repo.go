package repository

import (
	"context"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"gorm.io/gorm"
)

// BillRepository defines the data access contract for vendor bills.
type BillRepository interface {
	Create(ctx context.Context, b *model.Bill) error
	FindByID(ctx context.Context, id string) (*model.Bill, error)
	FindByNumber(ctx context.Context, number string) (*model.Bill, error)
	List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, int64, error)
	Update(ctx context.Context, b *model.Bill) error
	Delete(ctx context.Context, id string) error
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) Create(ctx context.Context, b *model.Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id string) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Preload("Vendor").First(&b, "id = ?", id).Error
	return &b, err
}

func (r *billRepo) FindByNumber(ctx context.Context, number string) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Where("bill_number = ?", number).First(&b).Error
	return &b, err
}

func (r *billRepo) List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, int64, error) {
	var bills []model.Bill
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Bill{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VendorID != "" {
		q = q.Where("vendor_id = ?", filter.VendorID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Most urgent first
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Vendor").Order("due_date ASC").Limit(filter.Limit).Offset(offset).Find(&bills).Error
	return bills, total, err
}

func (r *billRepo) Update(ctx context.Context, b *model.Bill) error {
	return r.db.WithContext(ctx).Omit("Vendor").Save(b).Error
}

func (r *billRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Bill{}, "id = ?", id).Error
}
