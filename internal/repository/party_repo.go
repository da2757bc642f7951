package repository

import (
	"context"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartyStats carries the derived per-party order aggregates. OrderCount
// includes cancelled orders; TotalValue excludes them.
type PartyStats struct {
	OrderCount int64
	TotalValue decimal.Decimal
}

// PartyRepository defines the data access contract for customers/vendors.
type PartyRepository interface {
	Create(ctx context.Context, p *model.Party) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Party, error)
	FindByEmail(ctx context.Context, email string) (*model.Party, error)
	List(ctx context.Context, filter dto.PartyFilter) ([]model.Party, int64, error)
	Update(ctx context.Context, p *model.Party) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountReferences counts orders, bills and purchase orders pointing at
	// the party. A non-zero count blocks deletion.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)

	// Stats computes order_count / total_order_value in one pass.
	Stats(ctx context.Context, id uuid.UUID) (PartyStats, error)
}

type partyRepo struct{ db *gorm.DB }

func NewPartyRepository(db *gorm.DB) PartyRepository { return &partyRepo{db: db} }

func (r *partyRepo) Create(ctx context.Context, p *model.Party) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *partyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Party, error) {
	var p model.Party
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *partyRepo) FindByEmail(ctx context.Context, email string) (*model.Party, error) {
	var p model.Party
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	return &p, err
}

func (r *partyRepo) List(ctx context.Context, filter dto.PartyFilter) ([]model.Party, int64, error) {
	var parties []model.Party
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Party{})

	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	switch filter.Active {
	case "true":
		q = q.Where("active = true")
	case "false":
		q = q.Where("active = false")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR company ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&parties).Error
	return parties, total, err
}

func (r *partyRepo) Update(ctx context.Context, p *model.Party) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *partyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Party{}, "id = ?", id).Error
}

func (r *partyRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var orders, bills, pos int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("party_id = ?", id).Count(&orders).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Where("vendor_id = ?", id).Count(&bills).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("vendor_id = ?", id).Count(&pos).Error; err != nil {
		return 0, err
	}
	return orders + bills + pos, nil
}

func (r *partyRepo) Stats(ctx context.Context, id uuid.UUID) (PartyStats, error) {
	var stats PartyStats
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("party_id = ?", id).Count(&stats.OrderCount).Error; err != nil {
		return stats, err
	}

	var raw decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("SUM(total)").
		Where("party_id = ? AND status <> ?", id, model.OrderStatusCancelled).
		Scan(&raw).Error
	if err != nil {
		return stats, err
	}
	if raw.Valid {
		stats.TotalValue = raw.Decimal
	} else {
		stats.TotalValue = decimal.Zero
	}
	return stats, nil
}
