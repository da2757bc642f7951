package repository

import (
	"context"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"gorm.io/gorm"
)

// AlertRepository defines the data access contract for alerts.
type AlertRepository interface {
	Create(ctx context.Context, a *model.Alert) error
	FindByID(ctx context.Context, id string) (*model.Alert, error)
	List(ctx context.Context, filter dto.AlertFilter) ([]model.Alert, int64, error)
	Update(ctx context.Context, a *model.Alert) error

	// HasUnreadTitled reports whether an unread alert with the exact title
	// already exists. Used by the low-stock scan to avoid duplicates.
	HasUnreadTitled(ctx context.Context, title string) (bool, error)
}

type alertRepo struct{ db *gorm.DB }

func NewAlertRepository(db *gorm.DB) AlertRepository { return &alertRepo{db: db} }

func (r *alertRepo) Create(ctx context.Context, a *model.Alert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *alertRepo) FindByID(ctx context.Context, id string) (*model.Alert, error) {
	var a model.Alert
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *alertRepo) List(ctx context.Context, filter dto.AlertFilter) ([]model.Alert, int64, error) {
	var alerts []model.Alert
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Alert{})

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Newest first
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&alerts).Error
	return alerts, total, err
}

func (r *alertRepo) Update(ctx context.Context, a *model.Alert) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *alertRepo) HasUnreadTitled(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Alert{}).
		Where("title = ? AND status = ?", title, model.AlertStatusUnread).
		Count(&count).Error
	return count > 0, err
}
